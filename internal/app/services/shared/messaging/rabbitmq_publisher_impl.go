package messaging

import (
	"clearclaim-service/internal/app/contracts"
	"clearclaim-service/internal/app/models"
	"clearclaim-service/internal/pkg/constvars"
	"clearclaim-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// PostingCompletedEvent is the payload published after a remittance batch
// posts successfully.
type PostingCompletedEvent struct {
	BatchID         string `json:"batch_id"`
	CheckNumber     string `json:"check_number"`
	PayerName       string `json:"payer_name"`
	TotalPayment    string `json:"total_payment"`
	ClaimsPosted    int    `json:"claims_posted"`
	ClaimsUnmatched int    `json:"claims_unmatched"`
	OccurredAt      string `json:"occurred_at"`
}

// ClaimsSubmittedEvent is published after an 837 file is handed to the
// clearinghouse.
type ClaimsSubmittedEvent struct {
	InterchangeControlNumber string   `json:"interchange_control_number"`
	ClaimNumbers             []string `json:"claim_numbers"`
	OccurredAt               string   `json:"occurred_at"`
}

type rabbitMQPublisher struct {
	ch              *amqp.Channel
	log             *zap.Logger
	postingQueue    string
	submissionQueue string
}

// NewRabbitMQPublisher declares both durable queues up front so publishes
// cannot race queue creation.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, postingQueue, submissionQueue string) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{postingQueue, submissionQueue} {
		_, err = ch.QueueDeclare(
			queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	return &rabbitMQPublisher{
		ch:              ch,
		log:             log,
		postingQueue:    postingQueue,
		submissionQueue: submissionQueue,
	}, nil
}

func (p *rabbitMQPublisher) PublishPostingCompleted(ctx context.Context, summary *models.PostingSummary) error {
	event := PostingCompletedEvent{
		BatchID:         summary.BatchID,
		CheckNumber:     summary.CheckNumber,
		PayerName:       summary.PayerName,
		TotalPayment:    summary.TotalPaymentAmount.StringFixed(2),
		ClaimsPosted:    summary.ClaimsPosted,
		ClaimsUnmatched: summary.ClaimsUnmatched,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	return p.publish(ctx, p.postingQueue, event)
}

func (p *rabbitMQPublisher) PublishClaimsSubmitted(ctx context.Context, interchangeControlNumber string, claimNumbers []string) error {
	event := ClaimsSubmittedEvent{
		InterchangeControlNumber: interchangeControlNumber,
		ClaimNumbers:             claimNumbers,
		OccurredAt:               time.Now().UTC().Format(time.RFC3339),
	}
	return p.publish(ctx, p.submissionQueue, event)
}

func (p *rabbitMQPublisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	p.log.Debug("Event published",
		zap.String("queue", queue),
	)
	return nil
}
