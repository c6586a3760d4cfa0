package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/builtafrica/spin-promo/internal/infra/queue"
)

func winningPayload() queue.NotificationPayload {
	return queue.NotificationPayload{
		ActivityID:    "act-1",
		WheelID:       "wheel-oct-2025",
		Name:          "Ama Mensah",
		Email:         "ama@example.com",
		PhoneNumber:   "+233201234567",
		Prize:         "T-Shirt",
		HasWonPrize:   true,
		NumberOfSpins: 1,
		MaxSpins:      1,
	}
}

func TestDispatchWinnerGetsCongratsEmail(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(nil)
	mockEmail.On("SendPrizeWon", "ama@example.com", "Ama Mensah", "T-Shirt").Return(nil)

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(context.Background(), winningPayload())

	assert.NoError(t, err)
	mockEmail.AssertCalled(t, "SendActivityNotice", mock.Anything)
	mockEmail.AssertCalled(t, "SendPrizeWon", "ama@example.com", "Ama Mensah", "T-Shirt")
	mockEmail.AssertNotCalled(t, "SendTryAgain", mock.Anything, mock.Anything)
}

func TestDispatchExhaustedLoserGetsTryAgainEmail(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(nil)
	mockEmail.On("SendTryAgain", "kofi@example.com", "Kofi Boateng").Return(nil)

	payload := queue.NotificationPayload{
		ActivityID: "act-2", WheelID: "wheel-oct-2025",
		Name: "Kofi Boateng", Email: "kofi@example.com",
		HasWonPrize: false, NumberOfSpins: 3, MaxSpins: 3,
	}

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(context.Background(), payload)

	assert.NoError(t, err)
	mockEmail.AssertCalled(t, "SendTryAgain", "kofi@example.com", "Kofi Boateng")
	mockEmail.AssertNotCalled(t, "SendPrizeWon", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchLoserWithBudgetLeftGetsNoParticipantEmail(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(nil)

	payload := queue.NotificationPayload{
		ActivityID: "act-3", WheelID: "wheel-oct-2025",
		Name: "Kofi Boateng", Email: "kofi@example.com",
		HasWonPrize: false, NumberOfSpins: 1, MaxSpins: 3,
	}

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(context.Background(), payload)

	assert.NoError(t, err)
	// Só o aviso interno sai
	mockEmail.AssertCalled(t, "SendActivityNotice", mock.Anything)
	mockEmail.AssertNotCalled(t, "SendPrizeWon", mock.Anything, mock.Anything, mock.Anything)
	mockEmail.AssertNotCalled(t, "SendTryAgain", mock.Anything, mock.Anything)
}

// TestDispatchNoticeFailureStillEmailsParticipant - os dois envios são
// independentes: o aviso interno cair não segura o email do vencedor
func TestDispatchNoticeFailureStillEmailsParticipant(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(errors.New("smtp 550"))
	mockEmail.On("SendPrizeWon", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(context.Background(), winningPayload())

	assert.NoError(t, err)
	mockEmail.AssertCalled(t, "SendPrizeWon", "ama@example.com", "Ama Mensah", "T-Shirt")
}

func TestDispatchParticipantFailureIsSwallowed(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(nil)
	mockEmail.On("SendPrizeWon", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("mailbox full"))

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(context.Background(), winningPayload())

	assert.NoError(t, err)
}

func TestDispatchWithoutMailConfigIsNoOp(t *testing.T) {
	uc := NewDispatchNotificationsUseCase(nil)

	err := uc.Execute(context.Background(), winningPayload())

	assert.NoError(t, err)
}

func TestDispatchRespectsContextDeadline(t *testing.T) {
	mockEmail := new(MockEmailService)
	mockEmail.On("SendActivityNotice", mock.Anything).Return(nil)
	mockEmail.On("SendPrizeWon", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewDispatchNotificationsUseCase(mockEmail)

	err := uc.Execute(ctx, winningPayload())

	assert.ErrorIs(t, err, context.Canceled)
}
