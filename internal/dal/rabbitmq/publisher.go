package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ioutboxrepo"
	"github.com/corray333/backend-labs/cafe/internal/service/models/event"
	"github.com/corray333/backend-labs/cafe/internal/service/models/outbox"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher publishes events and parks the ones that fail in the outbox.
type Publisher struct {
	channel  Channel
	outbox   ioutboxrepo.IOutboxRepository
	exchange string
	tracer   trace.Tracer
}

// NewPublisher creates a publisher. outboxRepo may be nil, then failed events are only logged.
func NewPublisher(channel Channel, outboxRepo ioutboxrepo.IOutboxRepository, exchange string) *Publisher {
	return &Publisher{
		channel:  channel,
		outbox:   outboxRepo,
		exchange: exchange,
		tracer:   otel.Tracer("cafe-svc/rabbitmq"),
	}
}

// Publish sends the event. A broker failure is not returned when the event was stored for retry.
func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	ctx, span := p.tracer.Start(ctx, "rabbitmq publish "+string(e.Type),
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("messaging.destination", p.exchange)),
	)
	defer span.End()

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubErr := p.channel.Publish(p.exchange, e.RoutingKey(), false, false, amqp.Publishing{
		ContentType:  outbox.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    e.OccurredAt,
		Type:         string(e.Type),
		Body:         body,
	})
	if pubErr == nil {
		return nil
	}

	span.RecordError(pubErr)
	slog.Warn("Failed to publish event, storing in outbox",
		"event_id", e.ID,
		"event_type", e.Type,
		"error", pubErr,
	)

	if p.outbox == nil {
		return fmt.Errorf("failed to publish event %s: %w", e.ID, pubErr)
	}

	now := time.Now()
	msg := outbox.Message{
		EventID:      e.ID,
		ExchangeName: p.exchange,
		RoutingKey:   e.RoutingKey(),
		Payload:      body,
		ContentType:  outbox.ContentTypeJSON,
		MaxRetries:   outbox.DefaultMaxRetries,
		LastError:    pubErr.Error(),
		CreatedAt:    now,
		UpdatedAt:    now,
		NextRetryAt:  now.Add(outbox.Backoff(0)),
	}
	if err := p.outbox.Insert(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w (outbox: %v)", e.ID, pubErr, err)
	}

	return nil
}
