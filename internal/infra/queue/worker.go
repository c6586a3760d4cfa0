package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationDispatcher é quem efetivamente manda os emails. O worker não
// conhece SMTP nem banco, só repassa o payload.
type NotificationDispatcher interface {
	Execute(ctx context.Context, payload NotificationPayload) error
}

type Worker struct {
	Channel    *amqp.Channel
	Dispatcher NotificationDispatcher

	// Teto de execução por mensagem. O transporte de email não tem recibo
	// de entrega, então o bound aqui é a única proteção contra vazamento.
	Timeout time.Duration
}

func NewWorker(ch *amqp.Channel, dispatcher NotificationDispatcher, timeout time.Duration) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
		Timeout:    timeout,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue: vai pra DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Notificação de giro para %s (wheel %s)", payload.Email, payload.WheelID)

			ctx, cancel := context.WithTimeout(context.Background(), w.Timeout)
			err := w.Dispatcher.Execute(ctx, payload)
			cancel()

			if err != nil {
				// O dispatcher engole falha de SMTP; erro aqui é timeout ou
				// cancelamento. Sem retry automático: a mensagem vai pra DLQ
				// e alguém decide o que fazer com ela.
				log.Printf("❌ [WORKER] Dispatch falhou: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
