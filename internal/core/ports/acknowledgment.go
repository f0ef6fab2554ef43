package ports

import (
	"context"

	"placeorder/internal/core/domain/model/order"
)

// LetterRenderer turns a priced order into the acknowledgment letter. It
// cannot fail.
type LetterRenderer interface {
	Render(o order.PricedOrderWithShippingMethod) order.HTMLString
}

// NotificationSender delivers an acknowledgment. Failures are reported as
// order.NotSent, never as errors, and are not retried.
type NotificationSender interface {
	Send(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult
}
