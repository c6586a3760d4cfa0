package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/builtafrica/spin-promo/internal/entity"
	"github.com/builtafrica/spin-promo/internal/infra/queue"
)

type RecordSpinUseCase struct {
	Activities entity.SpinActivityRepository
	Campaigns  entity.CampaignRepository

	// Caminho durável (RabbitMQ). Pode ser nil: aí o dispatch roda direto
	// numa goroutine com timeout.
	Queue      QueueProducerInterface
	Dispatcher Dispatcher

	DispatchTimeout time.Duration
}

func NewRecordSpinUseCase(
	activities entity.SpinActivityRepository,
	campaigns entity.CampaignRepository,
	queueProducer QueueProducerInterface,
	dispatcher Dispatcher,
	dispatchTimeout time.Duration,
) *RecordSpinUseCase {
	return &RecordSpinUseCase{
		Activities:      activities,
		Campaigns:       campaigns,
		Queue:           queueProducer,
		Dispatcher:      dispatcher,
		DispatchTimeout: dispatchTimeout,
	}
}

// Execute registra o resultado de um giro já decidido no front.
// Sem registro corrente: cria com 1 giro. Com registro: um único UPDATE
// atômico soma o giro e trava o prêmio. Depois de persistir, dispara as
// notificações sem bloquear a resposta — falha de email nunca desfaz o giro.
func (uc *RecordSpinUseCase) Execute(ctx context.Context, input RecordSpinInput) (*entity.SpinActivity, error) {
	validationErrors := ValidateRecordSpinInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	campaign, err := uc.Campaigns.FindByID(ctx, input.WheelID)
	if err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			return nil, &DomainError{Code: "CAMPAIGN_NOT_FOUND", Message: "campaign not found for this wheel"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load campaign: " + err.Error()}
	}

	var activity *entity.SpinActivity

	current, err := uc.Activities.FindCurrent(ctx, input.WheelID, input.Email)
	switch {
	case err == nil:
		activity, err = uc.Activities.RecordOutcome(ctx, current.ID, input.HasWonPrize, input.Prize)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to record spin outcome: " + err.Error()}
		}

	case errors.Is(err, entity.ErrActivityNotFound):
		activity, err = entity.NewSpinActivity(
			input.WheelID, input.Name, input.Email, input.PhoneNumber,
			input.HasWonPrize, input.Prize,
		)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		if err := uc.Activities.Create(ctx, activity); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist spin activity: " + err.Error()}
		}

	default:
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load spin activity: " + err.Error()}
	}

	uc.notify(ctx, activity, campaign)

	return activity, nil
}

// notify entrega o snapshot pro caminho configurado. O resultado nunca volta
// pra request que originou o giro.
func (uc *RecordSpinUseCase) notify(ctx context.Context, a *entity.SpinActivity, c *entity.Campaign) {
	payload := queue.NotificationPayload{
		ActivityID:    a.ID,
		WheelID:       a.WheelID,
		Name:          a.Name,
		Email:         a.Email,
		PhoneNumber:   a.PhoneNumber,
		Prize:         a.Prize,
		HasWonPrize:   a.HasWonPrize,
		NumberOfSpins: a.NumberOfSpins,
		MaxSpins:      c.MaxSpins,
		RecordedAt:    a.UpdatedAt,
	}

	if uc.Queue != nil {
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			// Giro já está no banco. Só loga: sem rollback por causa de fila.
			log.Printf("⚠️ Falha ao publicar notificação na fila: %v", err)
		}
		return
	}

	if uc.Dispatcher == nil {
		return
	}

	go func() {
		dispatchCtx, cancel := context.WithTimeout(context.Background(), uc.DispatchTimeout)
		defer cancel()

		if err := uc.Dispatcher.Execute(dispatchCtx, payload); err != nil {
			log.Printf("⚠️ Dispatch de notificação falhou: %v", err)
		}
	}()
}
