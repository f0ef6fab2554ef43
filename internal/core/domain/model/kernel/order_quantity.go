package kernel

import (
	"errors"
	"fmt"
	"math"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/errs"
	"placeorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minUnitQuantity = 1
	maxUnitQuantity = 1000
)

var (
	ErrUnitQuantityIsNotConstructed     = errors.New("UnitQuantity must be created via NewUnitQuantity constructor")
	ErrKilogramQuantityIsNotConstructed = errors.New(
		"KilogramQuantity must be created via NewKilogramQuantity constructor",
	)

	minKilogramQuantity = decimal.RequireFromString("0.05")
	maxKilogramQuantity = decimal.NewFromInt(100)
)

// OrderQuantity is either a UnitQuantity or a KilogramQuantity. NewOrderQuantity
// picks the variant from the product code, so a widget line always carries units
// and a gizmo line always carries kilograms.
type OrderQuantity interface {
	// Decimal returns the quantity as a multiplier for a unit price.
	Decimal() decimal.Decimal
	Validate() error

	isOrderQuantity()
}

// UnitQuantity is a whole number of items between 1 and 1000.
type UnitQuantity struct {
	value int
	guard guard.ConstructorGuard
}

func NewUnitQuantity(i int) (UnitQuantity, error) {
	value, err := constrained.Int("UnitQuantity", minUnitQuantity, maxUnitQuantity, i)
	if err != nil {
		return UnitQuantity{}, err
	}
	return UnitQuantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (q UnitQuantity) Validate() error          { return q.guard.Validate(ErrUnitQuantityIsNotConstructed) }
func (q UnitQuantity) Value() int               { return q.value }
func (q UnitQuantity) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(q.value)) }
func (UnitQuantity) isOrderQuantity()           {}

// KilogramQuantity is a weight between 0.05 and 100 kilograms.
type KilogramQuantity struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewKilogramQuantity(d decimal.Decimal) (KilogramQuantity, error) {
	value, err := constrained.Decimal("KilogramQuantity", minKilogramQuantity, maxKilogramQuantity, d)
	if err != nil {
		return KilogramQuantity{}, err
	}
	return KilogramQuantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}
func (q KilogramQuantity) Value() decimal.Decimal   { return q.value }
func (q KilogramQuantity) Decimal() decimal.Decimal { return q.value }
func (KilogramQuantity) isOrderQuantity()           {}

// NewOrderQuantity builds the quantity variant matching code. Widget quantities
// are truncated toward zero before the range check, so 2.9 widgets is 2.
func NewOrderQuantity(code ProductCode, quantity float64) (OrderQuantity, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"OrderQuantity", fmt.Errorf("%v is not a number", quantity),
		)
	}

	switch code.(type) {
	case WidgetCode:
		units := math.Trunc(quantity)
		if units < minUnitQuantity || units > maxUnitQuantity {
			return nil, errs.NewValueIsOutOfRangeError("UnitQuantity", units, minUnitQuantity, maxUnitQuantity)
		}
		q, err := NewUnitQuantity(int(units))
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(decimal.NewFromFloat(quantity))
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		panic(fmt.Sprintf("unexpected product code type %T", code))
	}
}
