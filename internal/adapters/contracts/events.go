package contracts

import (
	"fmt"

	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ShippableOrderLineDto carries the quantity as a number; Unit is "units" for
// widgets and "kg" for gizmos.
type ShippableOrderLineDto struct {
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

type PdfAttachmentDto struct {
	Name  string `json:"name"`
	Bytes []byte `json:"bytes"`
}

type ShippableOrderPlacedDto struct {
	OrderID         string                  `json:"orderId"`
	ShippingAddress AddressDto              `json:"shippingAddress"`
	ShipmentLines   []ShippableOrderLineDto `json:"shipmentLines"`
	Pdf             PdfAttachmentDto        `json:"pdf"`
}

type BillableOrderPlacedDto struct {
	OrderID        string          `json:"orderId"`
	BillingAddress AddressDto      `json:"billingAddress"`
	AmountToBill   decimal.Decimal `json:"amountToBill"`
}

type OrderAcknowledgmentSentDto struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

// PlaceOrderEventDto is an event as a single-entry object keyed by the event
// name, e.g. {"BillableOrderPlaced": {...}}.
type PlaceOrderEventDto map[string]any

// FromPlaceOrderEvent converts one event.
func FromPlaceOrderEvent(e events.PlaceOrderEvent) PlaceOrderEventDto {
	switch e := e.(type) {
	case events.AcknowledgmentSentEvent:
		return PlaceOrderEventDto{e.Key(): OrderAcknowledgmentSentDto{
			OrderID:      e.OrderID().Value(),
			EmailAddress: e.EmailAddress().Value(),
		}}
	case events.ShippableOrderPlacedEvent:
		lines := make([]ShippableOrderLineDto, 0)
		for _, l := range e.ShipmentLines() {
			lines = append(lines, ShippableOrderLineDto{
				ProductCode: l.ProductCode.Value(),
				Quantity:    l.Quantity.Decimal().InexactFloat64(),
				Unit:        services.QuantityUnit(l.Quantity),
			})
		}
		return PlaceOrderEventDto{e.Key(): ShippableOrderPlacedDto{
			OrderID:         e.OrderID().Value(),
			ShippingAddress: FromAddress(e.ShippingAddress()),
			ShipmentLines:   lines,
			Pdf:             PdfAttachmentDto{Name: e.Pdf().Name(), Bytes: e.Pdf().Bytes()},
		}}
	case events.BillableOrderPlacedEvent:
		return PlaceOrderEventDto{e.Key(): BillableOrderPlacedDto{
			OrderID:        e.OrderID().Value(),
			BillingAddress: FromAddress(e.BillingAddress()),
			AmountToBill:   e.AmountToBill().Value(),
		}}
	default:
		panic(fmt.Sprintf("unexpected place order event %T", e))
	}
}

// FromPlaceOrderEvents converts the events of one order, keeping their order.
func FromPlaceOrderEvents(placed []events.PlaceOrderEvent) []PlaceOrderEventDto {
	dtos := make([]PlaceOrderEventDto, 0, len(placed))
	for _, e := range placed {
		dtos = append(dtos, FromPlaceOrderEvent(e))
	}
	return dtos
}
