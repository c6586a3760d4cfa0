package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPayload é o snapshot do registro que viaja até o dispatcher.
// Carrega o MaxSpins da campanha porque o consumidor decide o email de
// "try again" comparando giros usados com o limite.
type NotificationPayload struct {
	ActivityID  string `json:"activity_id"`
	WheelID     string `json:"wheelId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`

	Prize         string `json:"prize,omitempty"`
	HasWonPrize   bool   `json:"hasWonPrize"`
	NumberOfSpins int64  `json:"numberOfSpins"`
	MaxSpins      int64  `json:"maxSpins"`

	RecordedAt time.Time `json:"recorded_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.spin
		RoutingKey,   // k.notification
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
