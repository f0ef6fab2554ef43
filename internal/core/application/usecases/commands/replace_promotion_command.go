package commands

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const promotionCodeMaxLength = 50

var ErrReplacePromotionCommandIsNotConstructed = errors.New(
	"ReplacePromotionCommand must be created via NewReplacePromotionCommand constructor",
)

// PromotionOverride is one product price under a promotion.
type PromotionOverride struct {
	ProductCode kernel.ProductCode
	Price       kernel.Price
}

// ReplacePromotionCommand swaps the full set of price overrides of one
// promotion. An empty set withdraws the promotion.
type ReplacePromotionCommand struct { //nolint:recvcheck //using for validation
	promotion kernel.PromotionCode
	overrides []PromotionOverride

	guard guard.ConstructorGuard
}

// NewReplacePromotionCommand validates every entry of prices, keyed by product
// code, and reports all bad entries at once.
func NewReplacePromotionCommand(promotion string, prices map[string]decimal.Decimal) (ReplacePromotionCommand, error) {
	cmd := ReplacePromotionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPromotion(promotion),
		cmd.setOverrides(prices),
	); err != nil {
		return ReplacePromotionCommand{}, err
	}

	return cmd, nil
}

func (c ReplacePromotionCommand) Validate() error {
	return c.guard.Validate(ErrReplacePromotionCommandIsNotConstructed)
}

func (c ReplacePromotionCommand) Promotion() kernel.PromotionCode {
	return c.promotion
}

// Overrides are ordered by product code.
func (c ReplacePromotionCommand) Overrides() []PromotionOverride {
	return slices.Clone(c.overrides)
}

func (c *ReplacePromotionCommand) setPromotion(s string) error {
	promotion, err := constrained.String("PromotionCode", promotionCodeMaxLength, s)
	if err != nil {
		return err
	}
	c.promotion = kernel.PromotionCode(promotion)
	return nil
}

func (c *ReplacePromotionCommand) setOverrides(prices map[string]decimal.Decimal) error {
	overrides := make([]PromotionOverride, 0, len(prices))
	var errList []error

	for s, amount := range prices {
		code, codeErr := kernel.NewProductCode(s)
		price, priceErr := kernel.NewPrice(amount)
		if err := errors.Join(codeErr, priceErr); err != nil {
			errList = append(errList, fmt.Errorf("override %q: %w", s, err))
			continue
		}
		overrides = append(overrides, PromotionOverride{ProductCode: code, Price: price})
	}

	if len(errList) > 0 {
		slices.SortFunc(errList, func(a, b error) int { return cmp.Compare(a.Error(), b.Error()) })
		return errors.Join(errList...)
	}

	slices.SortFunc(overrides, func(a, b PromotionOverride) int {
		return cmp.Compare(a.ProductCode.Value(), b.ProductCode.Value())
	})
	c.overrides = overrides
	return nil
}
