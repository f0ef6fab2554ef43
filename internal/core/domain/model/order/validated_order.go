package order

import (
	"errors"
	"fmt"
	"slices"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/errs"
	"placeorder/internal/pkg/guard"
)

var (
	ErrValidatedOrderLineIsNotConstructed = errors.New(
		"ValidatedOrderLine must be created via NewValidatedOrderLine constructor",
	)
	ErrValidatedOrderIsNotConstructed = errors.New(
		"ValidatedOrder must be created via NewValidatedOrder constructor",
	)
)

// ValidatedOrderLine is an order line whose quantity kind matches its product.
type ValidatedOrderLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity

	guard guard.ConstructorGuard
}

// NewValidatedOrderLine rejects a quantity whose kind does not match the
// product: widgets are counted in units, gizmos are weighed in kilograms.
func NewValidatedOrderLine(
	orderLineID kernel.OrderLineID,
	productCode kernel.ProductCode,
	quantity kernel.OrderQuantity,
) (ValidatedOrderLine, error) {
	if productCode == nil {
		return ValidatedOrderLine{}, errs.NewValueIsRequiredError("ProductCode")
	}
	if quantity == nil {
		return ValidatedOrderLine{}, errs.NewValueIsRequiredError("OrderQuantity")
	}

	if err := errors.Join(
		orderLineID.Validate(),
		productCode.Validate(),
		quantity.Validate(),
		quantityMatchesProduct(productCode, quantity),
	); err != nil {
		return ValidatedOrderLine{}, err
	}

	return ValidatedOrderLine{
		orderLineID: orderLineID,
		productCode: productCode,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func quantityMatchesProduct(code kernel.ProductCode, quantity kernel.OrderQuantity) error {
	var ok bool
	switch code.(type) {
	case kernel.WidgetCode:
		_, ok = quantity.(kernel.UnitQuantity)
	case kernel.GizmoCode:
		_, ok = quantity.(kernel.KilogramQuantity)
	default:
		panic(fmt.Sprintf("unexpected product code type %T", code))
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"OrderQuantity", fmt.Errorf("%T does not fit product %s", quantity, code.Value()),
		)
	}
	return nil
}

func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }
func (l ValidatedOrderLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity  { return l.quantity }

// ValidatedOrder is an order whose every field satisfies its constraints and
// whose products and addresses were confirmed by the external checks.
type ValidatedOrder struct {
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	pricingMethod   PricingMethod

	guard guard.ConstructorGuard
}

// NewValidatedOrder assembles an order from validated parts. It only checks that
// each part went through its own constructor.
func NewValidatedOrder(
	orderID kernel.OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
	pricingMethod PricingMethod,
) (ValidatedOrder, error) {
	validations := []error{
		orderID.Validate(),
		customerInfo.Validate(),
		shippingAddress.Validate(),
		billingAddress.Validate(),
	}
	for _, line := range lines {
		validations = append(validations, line.Validate())
	}
	if pricingMethod == nil {
		validations = append(validations, errs.NewValueIsRequiredError("PricingMethod"))
	}
	if err := errors.Join(validations...); err != nil {
		return ValidatedOrder{}, err
	}

	return ValidatedOrder{
		orderID:         orderID,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           slices.Clone(lines),
		pricingMethod:   pricingMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

func (o ValidatedOrder) OrderID() kernel.OrderID      { return o.orderID }
func (o ValidatedOrder) CustomerInfo() CustomerInfo   { return o.customerInfo }
func (o ValidatedOrder) ShippingAddress() Address     { return o.shippingAddress }
func (o ValidatedOrder) BillingAddress() Address      { return o.billingAddress }
func (o ValidatedOrder) PricingMethod() PricingMethod { return o.pricingMethod }

// Lines returns a copy of the order lines in submission order.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	return slices.Clone(o.lines)
}
