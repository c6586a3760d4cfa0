package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrActivityNotFound = errors.New("spin activity não encontrada")

// Entidade: SpinActivity
// Uma linha por giro registrado. O registro "corrente" de um participante é
// sempre o de updated_at mais recente para (wheel_id, email).
type SpinActivity struct {
	ID          string `json:"id"`
	WheelID     string `json:"wheelId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	Prize         string `json:"prize,omitempty"`
	HasWonPrize   bool   `json:"hasWonPrize"`
	NumberOfSpins int64  `json:"numberOfSpins"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Campos opcionais do update parcial (PUT). Ponteiro nil = não mexe.
type SpinActivityPatch struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	WheelID       *string `json:"wheelId,omitempty"`
	Prize         *string `json:"prize,omitempty"`
	HasWonPrize   *bool   `json:"hasWonPrize,omitempty"`
	NumberOfSpins *int64  `json:"numberOfSpins,omitempty"`
}

type SpinActivityRepository interface {
	// FindCurrent retorna o registro mais recente (updated_at DESC) do par
	// (wheelId, email), ou ErrActivityNotFound. Linhas históricas podem
	// existir; só a mais nova conta.
	FindCurrent(ctx context.Context, wheelID, email string) (*SpinActivity, error)
	FindCurrentByEmail(ctx context.Context, email string) (*SpinActivity, error)
	FindByID(ctx context.Context, id string) (*SpinActivity, error)

	Create(ctx context.Context, a *SpinActivity) error
	Update(ctx context.Context, a *SpinActivity) error

	// RecordOutcome aplica um giro em um único UPDATE atômico:
	// spins+1, has_won_prize OR winning, prize só no giro vencedor.
	RecordOutcome(ctx context.Context, id string, winning bool, prize string) (*SpinActivity, error)

	// IncrementSpins soma 1 em number_of_spins sem tocar nos campos de prêmio.
	IncrementSpins(ctx context.Context, id string) (*SpinActivity, error)
}

// Factory
func NewSpinActivity(wheelID, name, email, phone string, winning bool, prize string) (*SpinActivity, error) {
	now := time.Now()
	a := &SpinActivity{
		ID:            uuid.New().String(),
		WheelID:       wheelID,
		Name:          name,
		Email:         email,
		PhoneNumber:   phone,
		HasWonPrize:   winning,
		NumberOfSpins: 1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if winning {
		a.Prize = prize
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *SpinActivity) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.PhoneNumber == "" {
		return errors.New("phoneNumber is required")
	}
	if a.WheelID == "" {
		return errors.New("wheelId is required")
	}
	return nil
}
