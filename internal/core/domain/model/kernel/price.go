package kernel

import (
	"errors"
	"fmt"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPriceIsNotConstructed         = errors.New("Price must be created via NewPrice constructor")
	ErrBillingAmountIsNotConstructed = errors.New("BillingAmount must be created via NewBillingAmount constructor")

	minPrice         = decimal.Zero
	maxPrice         = decimal.NewFromInt(1000)
	minBillingAmount = decimal.Zero
	maxBillingAmount = decimal.NewFromInt(10000)
)

// Price is an amount between 0 and 1000 inclusive. It is used for unit prices,
// line prices and shipping costs.
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewPrice(d decimal.Decimal) (Price, error) {
	value, err := constrained.Decimal("Price", minPrice, maxPrice, d)
	if err != nil {
		return Price{}, err
	}
	return Price{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewPrice is NewPrice for amounts the caller knows to be in range, such as
// constants. It panics otherwise.
func MustNewPrice(d decimal.Decimal) Price {
	p, err := NewPrice(d)
	if err != nil {
		panic(fmt.Sprintf("kernel: invalid price: %v", err))
	}
	return p
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Value() decimal.Decimal {
	return p.value
}

// Multiply returns p times q, failing when the product exceeds the Price bound.
func (p Price) Multiply(q OrderQuantity) (Price, error) {
	return NewPrice(p.value.Mul(q.Decimal()))
}

func (p Price) String() string {
	return p.value.StringFixed(2)
}

// BillingAmount is the total to bill for an order, between 0 and 10000 inclusive.
type BillingAmount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewBillingAmount(d decimal.Decimal) (BillingAmount, error) {
	value, err := constrained.Decimal("BillingAmount", minBillingAmount, maxBillingAmount, d)
	if err != nil {
		return BillingAmount{}, err
	}
	return BillingAmount{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewBillingAmount panics when d is out of range.
func MustNewBillingAmount(d decimal.Decimal) BillingAmount {
	b, err := NewBillingAmount(d)
	if err != nil {
		panic(fmt.Sprintf("kernel: invalid billing amount: %v", err))
	}
	return b
}

// SumPrices totals prices into a BillingAmount, failing when the total exceeds
// the BillingAmount bound.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount(total)
}

func (b BillingAmount) Validate() error {
	return b.guard.Validate(ErrBillingAmountIsNotConstructed)
}

func (b BillingAmount) Value() decimal.Decimal {
	return b.value
}

// IsPositive reports whether there is anything to bill.
func (b BillingAmount) IsPositive() bool {
	return b.value.IsPositive()
}

func (b BillingAmount) String() string {
	return b.value.StringFixed(2)
}
