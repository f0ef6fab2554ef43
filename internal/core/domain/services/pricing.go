package services

import (
	"fmt"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
)

// GetProductPrice returns the unit price of a product. It is total: catalogs
// fall back to a default price for products they do not list.
type GetProductPrice func(code kernel.ProductCode) kernel.Price

// TryGetProductPrice returns a promotion's price override, if it has one.
type TryGetProductPrice func(code kernel.ProductCode) (kernel.Price, bool)

// GetStandardPrices returns the current standard price list.
type GetStandardPrices func() GetProductPrice

// GetPromotionPrices returns the overrides of a promotion. An unknown code
// yields a function that never finds an override.
type GetPromotionPrices func(code kernel.PromotionCode) TryGetProductPrice

// PricingResolver picks the price function for a pricing method.
type PricingResolver func(method order.PricingMethod) GetProductPrice

// GetPricingFunction builds the resolver from the two catalogs. Standard
// pricing uses the standard prices unchanged. A promotion uses its override for
// a product when it has one and the standard price otherwise, so an unknown
// promotion code prices exactly like standard pricing.
//
// The catalogs are consulted on every resolution, so a refreshed catalog
// applies from the next order on.
func GetPricingFunction(standardPrices GetStandardPrices, promotionPrices GetPromotionPrices) PricingResolver {
	return func(method order.PricingMethod) GetProductPrice {
		switch m := method.(type) {
		case order.StandardPricing:
			return standardPrices()
		case order.PromotionPricing:
			getStandardPrice := standardPrices()
			getPromotionPrice := promotionPrices(m.Code)
			if getPromotionPrice == nil {
				return getStandardPrice
			}
			return func(code kernel.ProductCode) kernel.Price {
				if price, ok := getPromotionPrice(code); ok {
					return price
				}
				return getStandardPrice(code)
			}
		default:
			panic(fmt.Sprintf("unexpected pricing method %T", method))
		}
	}
}

// PriceOrder prices each line as unit price times quantity and totals the
// product lines into the amount to bill. The first line whose price leaves the
// Price bounds fails the whole order, as does a total above the BillingAmount
// bound. A promotion adds one comment line after the product lines.
//
// Errors are always *order.PricingError.
func PriceOrder(resolve PricingResolver, validated order.ValidatedOrder) (order.PricedOrder, error) {
	getPrice := resolve(validated.PricingMethod())

	validatedLines := validated.Lines()
	lines := make([]order.PricedOrderLine, 0, len(validatedLines)+1)
	linePrices := make([]kernel.Price, 0, len(validatedLines))

	for _, line := range validatedLines {
		linePrice, err := getPrice(line.ProductCode()).Multiply(line.Quantity())
		if err != nil {
			return order.PricedOrder{}, order.NewPricingError(err.Error())
		}
		lines = append(lines, order.NewProductLine(line, linePrice))
		linePrices = append(linePrices, linePrice)
	}

	switch m := validated.PricingMethod().(type) {
	case order.StandardPricing:
	case order.PromotionPricing:
		lines = append(lines, order.NewCommentLine(fmt.Sprintf("Applied promotion %s", m.Code)))
	default:
		panic(fmt.Sprintf("unexpected pricing method %T", m))
	}

	amountToBill, err := kernel.SumPrices(linePrices)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err.Error())
	}

	priced, err := order.NewPricedOrder(validated, lines, amountToBill)
	if err != nil {
		return order.PricedOrder{}, order.NewPricingError(err.Error())
	}

	return priced, nil
}
