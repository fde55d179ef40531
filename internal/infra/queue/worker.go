package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificadorFollowUp define o contrato de quem avisa a equipe sobre um
// cliente urgente (WhatsApp, e-mail, etc).
type NotificadorFollowUp interface {
	EnviarAlerta(ctx context.Context, payload FollowUpPayload) error
}

type Worker struct {
	Channel     *amqp.Channel
	Notificador NotificadorFollowUp
}

func NewWorker(ch *amqp.Channel, notificador NotificadorFollowUp) *Worker {
	return &Worker{
		Channel:     ch,
		Notificador: notificador,
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
			log.Printf("📥 [WORKER] Mensagem recebida do RabbitMQ")

			var payload FollowUpPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Follow-up urgente: %s (%d dias sem contato)", payload.Nome, payload.DiasSemContato)

			if err := w.Notificador.EnviarAlerta(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar a equipe: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Equipe avisada sobre %s.", payload.Nome)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
