package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/builtafrica/spin-promo/internal/entity"
	"github.com/builtafrica/spin-promo/internal/infra/queue"
)

// MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) FindCurrent(ctx context.Context, wheelID, email string) (*entity.SpinActivity, error) {
	args := m.Called(ctx, wheelID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SpinActivity), args.Error(1)
}

func (m *MockActivityRepository) FindCurrentByEmail(ctx context.Context, email string) (*entity.SpinActivity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SpinActivity), args.Error(1)
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id string) (*entity.SpinActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SpinActivity), args.Error(1)
}

func (m *MockActivityRepository) Create(ctx context.Context, a *entity.SpinActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) Update(ctx context.Context, a *entity.SpinActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) RecordOutcome(ctx context.Context, id string, winning bool, prize string) (*entity.SpinActivity, error) {
	args := m.Called(ctx, id, winning, prize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SpinActivity), args.Error(1)
}

func (m *MockActivityRepository) IncrementSpins(ctx context.Context, id string) (*entity.SpinActivity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SpinActivity), args.Error(1)
}

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendActivityNotice(a entity.SpinActivity) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockEmailService) SendPrizeWon(to, name, prize string) error {
	args := m.Called(to, name, prize)
	return args.Error(0)
}

func (m *MockEmailService) SendTryAgain(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockDispatcher captura o payload do caminho direto (roda em goroutine,
// então o teste espera pelo canal).
type MockDispatcher struct {
	mock.Mock
	Called2 chan queue.NotificationPayload
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{Called2: make(chan queue.NotificationPayload, 4)}
}

func (m *MockDispatcher) Execute(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	m.Called2 <- payload
	return args.Error(0)
}

// fakeActivityRepo: repositório em memória com a mesma semântica atômica do
// Postgres. Usado nos testes de máquina de estado (N giros seguidos etc),
// onde mock por chamada ficaria ilegível.
type fakeActivityRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.SpinActivity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{rows: make(map[string]*entity.SpinActivity)}
}

func (f *fakeActivityRepo) FindCurrent(ctx context.Context, wheelID, email string) (*entity.SpinActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var current *entity.SpinActivity
	for _, a := range f.rows {
		if a.WheelID == wheelID && a.Email == email {
			if current == nil || a.UpdatedAt.After(current.UpdatedAt) {
				current = a
			}
		}
	}
	if current == nil {
		return nil, entity.ErrActivityNotFound
	}
	copy := *current
	return &copy, nil
}

func (f *fakeActivityRepo) FindCurrentByEmail(ctx context.Context, email string) (*entity.SpinActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var current *entity.SpinActivity
	for _, a := range f.rows {
		if a.Email == email {
			if current == nil || a.UpdatedAt.After(current.UpdatedAt) {
				current = a
			}
		}
	}
	if current == nil {
		return nil, entity.ErrActivityNotFound
	}
	copy := *current
	return &copy, nil
}

func (f *fakeActivityRepo) FindByID(ctx context.Context, id string) (*entity.SpinActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.rows[id]
	if !ok {
		return nil, entity.ErrActivityNotFound
	}
	copy := *a
	return &copy, nil
}

func (f *fakeActivityRepo) Create(ctx context.Context, a *entity.SpinActivity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copy := *a
	f.rows[a.ID] = &copy
	return nil
}

func (f *fakeActivityRepo) Update(ctx context.Context, a *entity.SpinActivity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rows[a.ID]; !ok {
		return entity.ErrActivityNotFound
	}
	copy := *a
	f.rows[a.ID] = &copy
	return nil
}

func (f *fakeActivityRepo) RecordOutcome(ctx context.Context, id string, winning bool, prize string) (*entity.SpinActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.rows[id]
	if !ok {
		return nil, entity.ErrActivityNotFound
	}
	a.NumberOfSpins++
	if winning && !a.HasWonPrize {
		a.Prize = prize
	}
	a.HasWonPrize = a.HasWonPrize || winning
	a.UpdatedAt = time.Now()

	copy := *a
	return &copy, nil
}

func (f *fakeActivityRepo) IncrementSpins(ctx context.Context, id string) (*entity.SpinActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.rows[id]
	if !ok {
		return nil, entity.ErrActivityNotFound
	}
	a.NumberOfSpins++
	a.UpdatedAt = time.Now()

	copy := *a
	return &copy, nil
}
