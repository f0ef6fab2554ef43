package services

import (
	"context"
	"fmt"

	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/ports"
)

// Acknowledge renders the letter and sends it once. It returns nil when the
// sender reports NotSent; an unsent acknowledgment does not fail the order.
func Acknowledge(
	ctx context.Context,
	renderer ports.LetterRenderer,
	sender ports.NotificationSender,
	o order.PricedOrderWithShippingMethod,
) *events.OrderAcknowledgmentSent {
	priced := o.PricedOrder()
	acknowledgment := order.OrderAcknowledgment{
		EmailAddress: priced.CustomerInfo().EmailAddress(),
		Letter:       renderer.Render(o),
	}

	switch result := sender.Send(ctx, acknowledgment); result {
	case order.Sent:
		sent := events.NewOrderAcknowledgmentSent(priced.OrderID(), acknowledgment.EmailAddress)
		return &sent
	case order.NotSent:
		return nil
	default:
		panic(fmt.Sprintf("unexpected send result %d", result))
	}
}
