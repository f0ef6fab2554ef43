package order

import (
	"strings"

	"placeorder/internal/core/domain/model/kernel"
)

// PricingMethod is either StandardPricing or PromotionPricing.
type PricingMethod interface {
	isPricingMethod()
}

// StandardPricing prices every line from the standard catalog.
type StandardPricing struct{}

// PromotionPricing prices lines from the promotion's overrides where it has one.
type PromotionPricing struct {
	Code kernel.PromotionCode
}

func (StandardPricing) isPricingMethod()  {}
func (PromotionPricing) isPricingMethod() {}

// NewPricingMethod resolves the promotion code a customer entered. A blank code
// means standard pricing. The code is not checked against the catalog.
func NewPricingMethod(promotionCode string) PricingMethod {
	if strings.TrimSpace(promotionCode) == "" {
		return StandardPricing{}
	}
	return PromotionPricing{Code: kernel.PromotionCode(promotionCode)}
}
