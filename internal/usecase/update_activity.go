package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/builtafrica/spin-promo/internal/entity"
)

type UpdateActivityUseCase struct {
	Activities entity.SpinActivityRepository
}

func NewUpdateActivityUseCase(activities entity.SpinActivityRepository) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{Activities: activities}
}

// Execute é o caminho de edição explícita (PUT): acha por id, senão pelo
// registro mais recente do email, e aplica só os campos enviados.
// Não dispara notificação nenhuma.
func (uc *UpdateActivityUseCase) Execute(ctx context.Context, input UpdateActivityInput) (*entity.SpinActivity, error) {
	if strings.TrimSpace(input.ID) == "" && strings.TrimSpace(input.Email) == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "Either id or email is required for update",
		}
	}

	activity, err := uc.find(ctx, input)
	if err != nil {
		if errors.Is(err, entity.ErrActivityNotFound) {
			return nil, &DomainError{Code: "ACTIVITY_NOT_FOUND", Message: "Spin activity not found"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load spin activity: " + err.Error()}
	}

	applyPatch(activity, input.SpinActivityPatch)
	activity.UpdatedAt = time.Now()

	if err := uc.Activities.Update(ctx, activity); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update spin activity: " + err.Error()}
	}

	return activity, nil
}

func (uc *UpdateActivityUseCase) find(ctx context.Context, input UpdateActivityInput) (*entity.SpinActivity, error) {
	if input.ID != "" {
		return uc.Activities.FindByID(ctx, input.ID)
	}
	return uc.Activities.FindCurrentByEmail(ctx, input.Email)
}

func applyPatch(a *entity.SpinActivity, p entity.SpinActivityPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		a.PhoneNumber = *p.PhoneNumber
	}
	if p.WheelID != nil {
		a.WheelID = *p.WheelID
	}
	if p.Prize != nil {
		a.Prize = *p.Prize
	}
	if p.HasWonPrize != nil {
		a.HasWonPrize = *p.HasWonPrize
	}
	if p.NumberOfSpins != nil {
		a.NumberOfSpins = *p.NumberOfSpins
	}
}
