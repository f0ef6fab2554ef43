package order

import "placeorder/internal/core/domain/model/kernel"

// HTMLString is a rendered acknowledgment letter.
type HTMLString string

// OrderAcknowledgment is the letter to send and its recipient.
type OrderAcknowledgment struct {
	EmailAddress kernel.EmailAddress
	Letter       HTMLString
}

// SendResult reports whether a notification was handed off. It is not an
// error: an unsent acknowledgment does not fail the order.
type SendResult int

const (
	NotSent SendResult = iota
	Sent
)

func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}
