package usecase

import (
	"context"
	"log"
	"time"

	"github.com/builtafrica/spin-promo/internal/entity"
	"github.com/builtafrica/spin-promo/internal/infra/http/middleware"
	"github.com/builtafrica/spin-promo/internal/infra/queue"
)

// DispatchNotificationsUseCase manda o aviso interno e, dependendo do
// resultado, o email do participante. Sem estado, sem chave de idempotência:
// chamar duas vezes com o mesmo snapshot manda email duplicado.
type DispatchNotificationsUseCase struct {
	Email EmailService
}

func NewDispatchNotificationsUseCase(email EmailService) *DispatchNotificationsUseCase {
	return &DispatchNotificationsUseCase{Email: email}
}

// Execute tenta os dois envios de forma independente. Falha de um não
// impede o outro e nenhuma falha sobe pro chamador do giro — o registro
// já está persistido e não volta atrás por causa de SMTP.
func (uc *DispatchNotificationsUseCase) Execute(ctx context.Context, payload queue.NotificationPayload) error {
	if uc.Email == nil {
		// Credenciais de email ausentes. Degrada pra no-op avisado.
		log.Printf("⚠️ SMTP não configurado. Pulando notificações do giro %s.", payload.ActivityID)
		return nil
	}

	activity := entity.SpinActivity{
		ID:            payload.ActivityID,
		WheelID:       payload.WheelID,
		Name:          payload.Name,
		Email:         payload.Email,
		PhoneNumber:   payload.PhoneNumber,
		Prize:         payload.Prize,
		HasWonPrize:   payload.HasWonPrize,
		NumberOfSpins: payload.NumberOfSpins,
		UpdatedAt:     payload.RecordedAt,
	}

	uc.send(ctx, "ops_notice", func() error {
		return uc.Email.SendActivityNotice(activity)
	})

	switch {
	case payload.HasWonPrize:
		uc.send(ctx, "prize_won", func() error {
			return uc.Email.SendPrizeWon(payload.Email, payload.Name, payload.Prize)
		})
	case payload.NumberOfSpins >= payload.MaxSpins:
		uc.send(ctx, "try_again", func() error {
			return uc.Email.SendTryAgain(payload.Email, payload.Name)
		})
	}
	// Giro perdedor com saldo sobrando: participante não recebe nada.

	return ctx.Err()
}

// send roda o envio numa goroutine pra respeitar o teto do contexto.
// Um DialAndSend pendurado não segura o dispatch pra sempre.
func (uc *DispatchNotificationsUseCase) send(ctx context.Context, kind string, fn func() error) {
	done := make(chan error, 1)
	start := time.Now()

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		if err != nil {
			middleware.RecordEmailSent(kind, "error")
			log.Printf("❌ [Email] envio %s falhou: %v", kind, err)
			return
		}
		middleware.RecordEmailSent(kind, "ok")
		log.Printf("✉️ [Email] %s enviado em %s", kind, time.Since(start).Round(time.Millisecond))
	case <-ctx.Done():
		middleware.RecordEmailSent(kind, "timeout")
		log.Printf("❌ [Email] envio %s estourou o tempo: %v", kind, ctx.Err())
	}
}
