package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/builtafrica/spin-promo/internal/entity"
)

type IncrementSpinsUseCase struct {
	Activities entity.SpinActivityRepository
}

func NewIncrementSpinsUseCase(activities entity.SpinActivityRepository) *IncrementSpinsUseCase {
	return &IncrementSpinsUseCase{Activities: activities}
}

// Execute soma exatamente 1 giro no registro corrente do email, sem tocar
// em has_won_prize nem em prize. Uma chamada = um incremento.
func (uc *IncrementSpinsUseCase) Execute(ctx context.Context, email string) (*entity.SpinActivity, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "Email is required"}
	}

	current, err := uc.Activities.FindCurrentByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrActivityNotFound) {
			return nil, &DomainError{Code: "ACTIVITY_NOT_FOUND", Message: "Spin activity not found for this email"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load spin activity: " + err.Error()}
	}

	updated, err := uc.Activities.IncrementSpins(ctx, current.ID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to increment spin count: " + err.Error()}
	}

	return updated, nil
}
