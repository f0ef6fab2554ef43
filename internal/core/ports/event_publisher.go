package ports

import (
	"context"

	"placeorder/internal/core/domain/model/events"
)

// EventPublisher hands the events of one placed order to downstream systems.
type EventPublisher interface {
	Publish(ctx context.Context, placed []events.PlaceOrderEvent) error
}
