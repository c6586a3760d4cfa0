package usecase

import (
	"context"

	"github.com/builtafrica/spin-promo/internal/entity"
	"github.com/builtafrica/spin-promo/internal/infra/queue"
)

type EmailService interface {
	// Aviso interno pro time de operações, mandado em todo giro.
	SendActivityNotice(a entity.SpinActivity) error
	// Parabéns + prêmio pro participante vencedor.
	SendPrizeWon(to, name, prize string) error
	// "Try again" quando o participante estourou o limite sem ganhar.
	SendTryAgain(to, name string) error
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}

// Dispatcher é o caminho direto (sem fila) de notificação.
type Dispatcher interface {
	Execute(ctx context.Context, payload queue.NotificationPayload) error
}
