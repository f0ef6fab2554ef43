// Package events defines the domain events emitted by a successfully placed
// order, for the shipping and billing subsystems and for auditing the customer
// notification.
//
// PlaceOrderEvent is a closed union of AcknowledgmentSentEvent,
// ShippableOrderPlacedEvent and BillableOrderPlacedEvent. Each variant reports
// the key downstream consumers route on.
package events
