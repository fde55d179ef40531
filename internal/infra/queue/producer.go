package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gabrielfarias/autobrilho-backend/internal/entity"
)

// FollowUpPayload é a mensagem publicada quando um cliente vira urgente
// na varredura de follow-up.
type FollowUpPayload struct {
	ClienteID      string `json:"cliente_id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	Veiculo        string `json:"veiculo"`
	Estagio        string `json:"estagio"`
	DiasSemContato int    `json:"dias_sem_contato"`
	Nivel          string `json:"nivel"`
	DetectadoEm    string `json:"detectado_em"`
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

func (p *RabbitMQProducer) PublishFollowUp(ctx context.Context, f entity.FollowUp) error {
	payload := FollowUpPayload{
		ClienteID:      f.ClienteID,
		Nome:           f.Nome,
		Telefone:       f.Telefone,
		Veiculo:        f.Veiculo,
		Estagio:        string(f.Estagio),
		DiasSemContato: f.DiasSemContato,
		Nivel:          f.Nivel,
		DetectadoEm:    time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
