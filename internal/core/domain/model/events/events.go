package events

import (
	"bytes"
	"slices"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
)

// Keys of the event variants in their external representation.
const (
	OrderAcknowledgmentSentKey = "OrderAcknowledgmentSent"
	ShippableOrderPlacedKey    = "ShippableOrderPlaced"
	BillableOrderPlacedKey     = "BillableOrderPlaced"
)

// PlaceOrderEvent is one of AcknowledgmentSentEvent, ShippableOrderPlacedEvent
// or BillableOrderPlacedEvent.
type PlaceOrderEvent interface {
	Key() string
	OrderID() kernel.OrderID

	isPlaceOrderEvent()
}

// OrderAcknowledgmentSent records that the customer was notified.
type OrderAcknowledgmentSent struct {
	orderID      kernel.OrderID
	emailAddress kernel.EmailAddress
}

func NewOrderAcknowledgmentSent(orderID kernel.OrderID, emailAddress kernel.EmailAddress) OrderAcknowledgmentSent {
	return OrderAcknowledgmentSent{orderID: orderID, emailAddress: emailAddress}
}

func (e OrderAcknowledgmentSent) OrderID() kernel.OrderID           { return e.orderID }
func (e OrderAcknowledgmentSent) EmailAddress() kernel.EmailAddress { return e.emailAddress }

// ShippableOrderLine is what the warehouse needs to pick one product line.
type ShippableOrderLine struct {
	ProductCode kernel.ProductCode
	Quantity    kernel.OrderQuantity
}

// PdfAttachment is a named document sent along with a shipment.
type PdfAttachment struct {
	name  string
	bytes []byte
}

func NewPdfAttachment(name string, content []byte) PdfAttachment {
	return PdfAttachment{name: name, bytes: bytes.Clone(content)}
}

func (a PdfAttachment) Name() string  { return a.name }
func (a PdfAttachment) Bytes() []byte { return bytes.Clone(a.bytes) }

// ShippableOrderPlaced tells the shipping subsystem what to send where.
type ShippableOrderPlaced struct {
	orderID         kernel.OrderID
	shippingAddress order.Address
	shipmentLines   []ShippableOrderLine
	pdf             PdfAttachment
}

func NewShippableOrderPlaced(
	orderID kernel.OrderID,
	shippingAddress order.Address,
	shipmentLines []ShippableOrderLine,
	pdf PdfAttachment,
) ShippableOrderPlaced {
	return ShippableOrderPlaced{
		orderID:         orderID,
		shippingAddress: shippingAddress,
		shipmentLines:   slices.Clone(shipmentLines),
		pdf:             pdf,
	}
}

func (e ShippableOrderPlaced) OrderID() kernel.OrderID             { return e.orderID }
func (e ShippableOrderPlaced) ShippingAddress() order.Address      { return e.shippingAddress }
func (e ShippableOrderPlaced) ShipmentLines() []ShippableOrderLine { return slices.Clone(e.shipmentLines) }
func (e ShippableOrderPlaced) Pdf() PdfAttachment                  { return e.pdf }

// BillableOrderPlaced tells the billing subsystem how much to charge.
type BillableOrderPlaced struct {
	orderID        kernel.OrderID
	billingAddress order.Address
	amountToBill   kernel.BillingAmount
}

func NewBillableOrderPlaced(
	orderID kernel.OrderID,
	billingAddress order.Address,
	amountToBill kernel.BillingAmount,
) BillableOrderPlaced {
	return BillableOrderPlaced{orderID: orderID, billingAddress: billingAddress, amountToBill: amountToBill}
}

func (e BillableOrderPlaced) OrderID() kernel.OrderID            { return e.orderID }
func (e BillableOrderPlaced) BillingAddress() order.Address      { return e.billingAddress }
func (e BillableOrderPlaced) AmountToBill() kernel.BillingAmount { return e.amountToBill }

type AcknowledgmentSentEvent struct {
	OrderAcknowledgmentSent
}

type ShippableOrderPlacedEvent struct {
	ShippableOrderPlaced
}

type BillableOrderPlacedEvent struct {
	BillableOrderPlaced
}

func (AcknowledgmentSentEvent) Key() string   { return OrderAcknowledgmentSentKey }
func (ShippableOrderPlacedEvent) Key() string { return ShippableOrderPlacedKey }
func (BillableOrderPlacedEvent) Key() string  { return BillableOrderPlacedKey }

func (AcknowledgmentSentEvent) isPlaceOrderEvent()   {}
func (ShippableOrderPlacedEvent) isPlaceOrderEvent() {}
func (BillableOrderPlacedEvent) isPlaceOrderEvent()  {}
