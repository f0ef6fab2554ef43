package order

import (
	"fmt"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/errs"
)

// ShippingMethod is the carrier service an order ships with.
type ShippingMethod int

const (
	UnknownShippingMethod ShippingMethod = iota
	PostalService
	Fedex24
	Fedex48
	Ups48
)

func getShippingMethodStrings() map[ShippingMethod]string {
	return map[ShippingMethod]string{
		UnknownShippingMethod: "Unknown",
		PostalService:         "PostalService",
		Fedex24:               "Fedex24",
		Fedex48:               "Fedex48",
		Ups48:                 "Ups48",
	}
}

func (m ShippingMethod) Validate() error {
	if m < PostalService || m > Ups48 {
		return errs.NewValueIsInvalidErrorWithCause("ShippingMethod", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

func (m ShippingMethod) String() string {
	if str, ok := getShippingMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

type ShippingInfo struct {
	method ShippingMethod
	cost   kernel.Price
}

func NewShippingInfo(method ShippingMethod, cost kernel.Price) ShippingInfo {
	return ShippingInfo{method: method, cost: cost}
}

func (i ShippingInfo) Method() ShippingMethod { return i.method }
func (i ShippingInfo) Cost() kernel.Price     { return i.cost }

// PricedOrderWithShippingMethod is a priced order with its shipping arranged.
type PricedOrderWithShippingMethod struct {
	shippingInfo ShippingInfo
	pricedOrder  PricedOrder
}

func NewPricedOrderWithShippingMethod(
	shippingInfo ShippingInfo,
	pricedOrder PricedOrder,
) PricedOrderWithShippingMethod {
	return PricedOrderWithShippingMethod{shippingInfo: shippingInfo, pricedOrder: pricedOrder}
}

func (o PricedOrderWithShippingMethod) ShippingInfo() ShippingInfo { return o.shippingInfo }
func (o PricedOrderWithShippingMethod) PricedOrder() PricedOrder   { return o.pricedOrder }

// WithShippingInfo returns a copy of o with its shipping replaced.
func (o PricedOrderWithShippingMethod) WithShippingInfo(info ShippingInfo) PricedOrderWithShippingMethod {
	return NewPricedOrderWithShippingMethod(info, o.pricedOrder)
}
