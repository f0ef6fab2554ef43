package services

import (
	"fmt"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ShippingCostCalculator prices the shipping of an order. It cannot fail.
type ShippingCostCalculator func(o order.PricedOrder) kernel.Price

var (
	localShippingCost         = kernel.MustNewPrice(decimal.NewFromInt(5))
	remoteShippingCost        = kernel.MustNewPrice(decimal.NewFromInt(10))
	internationalShippingCost = kernel.MustNewPrice(decimal.NewFromInt(20))
	freeShipping              = kernel.MustNewPrice(decimal.Zero)

	localStates = map[string]struct{}{"CA": {}, "OR": {}, "AZ": {}, "NV": {}}
)

// CalculateShippingCost applies the rule table in order:
//  1. outside the US: 20
//  2. US west-coast states (CA, OR, AZ, NV): 5
//  3. any other US state: 10
func CalculateShippingCost(o order.PricedOrder) kernel.Price {
	address := o.ShippingAddress()
	if !address.IsUS() {
		return internationalShippingCost
	}
	if _, ok := localStates[address.State().Value()]; ok {
		return localShippingCost
	}
	return remoteShippingCost
}

// AddShippingInfo attaches the calculated cost and ships with Fedex24.
func AddShippingInfo(calculate ShippingCostCalculator, o order.PricedOrder) order.PricedOrderWithShippingMethod {
	return order.NewPricedOrderWithShippingMethod(
		order.NewShippingInfo(order.Fedex24, calculate(o)),
		o,
	)
}

// FreeVipShipping waives shipping for VIP customers and ships their orders
// with Fedex24, whatever the calculated cost was.
func FreeVipShipping(o order.PricedOrderWithShippingMethod) order.PricedOrderWithShippingMethod {
	switch status := o.PricedOrder().CustomerInfo().VipStatus(); status {
	case kernel.Normal:
		return o
	case kernel.VIP:
		return o.WithShippingInfo(order.NewShippingInfo(order.Fedex24, freeShipping))
	default:
		panic(fmt.Sprintf("unexpected vip status %s", status))
	}
}
