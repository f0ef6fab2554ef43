package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"placeorder/internal/adapters/contracts"
	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const eventKeyHeader = "event-key"

// IdempotencyGuard remembers which orders already had their events published.
type IdempotencyGuard interface {
	Key(orderID string) string
	Seen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

// EventPublisher writes the events of an order as JSON keyed records, keyed by
// order id. An order whose events were already published within the guard's
// TTL is skipped.
type EventPublisher struct {
	writer  MessageWriter
	guard   IdempotencyGuard
	metrics *metrics.ServerMetrics
	logger  *slog.Logger
}

// NewEventPublisher accepts a nil guard, which disables duplicate detection,
// and nil metrics.
func NewEventPublisher(
	writer MessageWriter,
	guard IdempotencyGuard,
	m *metrics.ServerMetrics,
	logger *slog.Logger,
) *EventPublisher {
	return &EventPublisher{
		writer:  writer,
		guard:   guard,
		metrics: m,
		logger:  logger.With("component", "event_publisher"),
	}
}

func (p *EventPublisher) Publish(ctx context.Context, placed []events.PlaceOrderEvent) error {
	if len(placed) == 0 {
		return nil
	}

	orderID := placed[0].OrderID().Value()
	logger := p.logger.With("order_id", orderID)

	var key string
	if p.guard != nil {
		key = p.guard.Key(orderID)
		seen, err := p.guard.Seen(ctx, key)
		if err != nil {
			return fmt.Errorf("idempotency check: %w", err)
		}
		if seen {
			logger.InfoContext(ctx, "events already published, skipping")
			return nil
		}
	}

	msgs := make([]kafka.Message, 0, len(placed))
	for _, e := range placed {
		msg, err := jsonMessage(orderID, []kafka.Header{{Key: eventKeyHeader, Value: []byte(e.Key())}},
			contracts.FromPlaceOrderEvent(e))
		if err != nil {
			return p.fail(ctx, key, placed, fmt.Errorf("encode %s: %w", e.Key(), err))
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return p.fail(ctx, key, placed, fmt.Errorf("write events: %w", err))
	}

	p.count(placed, "ok")
	logger.InfoContext(ctx, "events published", "count", len(msgs))
	return nil
}

func (p *EventPublisher) fail(ctx context.Context, key string, placed []events.PlaceOrderEvent, err error) error {
	p.count(placed, "error")
	if p.guard != nil {
		if forgetErr := p.guard.Forget(context.WithoutCancel(ctx), key); forgetErr != nil {
			p.logger.WarnContext(ctx, "failed to clear idempotency key", "key", key, "error", forgetErr)
		}
	}
	return err
}

func (p *EventPublisher) count(placed []events.PlaceOrderEvent, result string) {
	if p.metrics == nil {
		return
	}
	for _, e := range placed {
		p.metrics.EventsPublished.WithLabelValues(e.Key(), result).Inc()
	}
}
