package services

import (
	"bytes"
	"fmt"

	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
)

// CreateEvents returns the events of a placed order in a fixed order: the
// acknowledgment if one was sent, then the shippable order (always), then the
// billable order if there is anything to bill.
func CreateEvents(priced order.PricedOrder, acknowledgment *events.OrderAcknowledgmentSent) []events.PlaceOrderEvent {
	placed := make([]events.PlaceOrderEvent, 0, 3)

	if acknowledgment != nil {
		placed = append(placed, events.AcknowledgmentSentEvent{OrderAcknowledgmentSent: *acknowledgment})
	}

	placed = append(placed, events.ShippableOrderPlacedEvent{ShippableOrderPlaced: createShippingEvent(priced)})

	if priced.AmountToBill().IsPositive() {
		placed = append(placed, events.BillableOrderPlacedEvent{BillableOrderPlaced: createBillingEvent(priced)})
	}

	return placed
}

func createShippingEvent(priced order.PricedOrder) events.ShippableOrderPlaced {
	productLines := priced.ProductLines()
	shipmentLines := make([]events.ShippableOrderLine, 0, len(productLines))
	for _, line := range productLines {
		shipmentLines = append(shipmentLines, events.ShippableOrderLine{
			ProductCode: line.ProductCode(),
			Quantity:    line.Quantity(),
		})
	}

	return events.NewShippableOrderPlaced(
		priced.OrderID(),
		priced.ShippingAddress(),
		shipmentLines,
		events.NewPdfAttachment(fmt.Sprintf("Order%s.pdf", priced.OrderID()), PackingSlip(priced)),
	)
}

func createBillingEvent(priced order.PricedOrder) events.BillableOrderPlaced {
	return events.NewBillableOrderPlaced(priced.OrderID(), priced.BillingAddress(), priced.AmountToBill())
}

// PackingSlip renders the shipment attachment. The output depends only on the
// order, so placing the same order twice yields identical bytes.
func PackingSlip(priced order.PricedOrder) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Packing slip for order %s\n", priced.OrderID())
	for _, line := range priced.ProductLines() {
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", line.OrderLineID(), line.ProductCode().Value(), FormatQuantity(line.Quantity()))
	}
	return buf.Bytes()
}

// Units of the two quantity kinds.
const (
	UnitsUnit     = "units"
	KilogramsUnit = "kg"
)

// QuantityUnit names the unit a quantity is measured in.
func QuantityUnit(q kernel.OrderQuantity) string {
	switch q.(type) {
	case kernel.UnitQuantity:
		return UnitsUnit
	case kernel.KilogramQuantity:
		return KilogramsUnit
	default:
		panic(fmt.Sprintf("unexpected quantity type %T", q))
	}
}

// FormatQuantity renders a quantity with its unit, as "3 units" or "0.5 kg".
func FormatQuantity(q kernel.OrderQuantity) string {
	return fmt.Sprintf("%s %s", q.Decimal().String(), QuantityUnit(q))
}
