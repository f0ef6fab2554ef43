package order

import (
	"errors"
	"slices"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/pkg/guard"
)

var ErrPricedOrderIsNotConstructed = errors.New("PricedOrder must be created via NewPricedOrder constructor")

// PricedOrderLine is either a ProductLine or a CommentLine.
type PricedOrderLine interface {
	isPricedOrderLine()
}

// ProductLine is a validated line with its computed price.
type ProductLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	linePrice   kernel.Price
}

func NewProductLine(line ValidatedOrderLine, linePrice kernel.Price) ProductLine {
	return ProductLine{
		orderLineID: line.OrderLineID(),
		productCode: line.ProductCode(),
		quantity:    line.Quantity(),
		linePrice:   linePrice,
	}
}

func (l ProductLine) OrderLineID() kernel.OrderLineID { return l.orderLineID }
func (l ProductLine) ProductCode() kernel.ProductCode { return l.productCode }
func (l ProductLine) Quantity() kernel.OrderQuantity  { return l.quantity }
func (l ProductLine) LinePrice() kernel.Price         { return l.linePrice }

// CommentLine is a synthetic line carrying text only. It has no price.
type CommentLine struct {
	text string
}

func NewCommentLine(text string) CommentLine {
	return CommentLine{text: text}
}

func (l CommentLine) Text() string { return l.text }

func (ProductLine) isPricedOrderLine() {}
func (CommentLine) isPricedOrderLine() {}

// PricedOrder is a validated order with a price for every product line and the
// total amount to bill.
type PricedOrder struct {
	orderID         kernel.OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	pricingMethod   PricingMethod

	guard guard.ConstructorGuard
}

// NewPricedOrder carries the identity, customer and addresses of validated over
// to the priced order.
func NewPricedOrder(
	validated ValidatedOrder,
	lines []PricedOrderLine,
	amountToBill kernel.BillingAmount,
) (PricedOrder, error) {
	if err := errors.Join(validated.Validate(), amountToBill.Validate()); err != nil {
		return PricedOrder{}, err
	}

	return PricedOrder{
		orderID:         validated.OrderID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		amountToBill:    amountToBill,
		lines:           slices.Clone(lines),
		pricingMethod:   validated.PricingMethod(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

func (o PricedOrder) OrderID() kernel.OrderID            { return o.orderID }
func (o PricedOrder) CustomerInfo() CustomerInfo         { return o.customerInfo }
func (o PricedOrder) ShippingAddress() Address           { return o.shippingAddress }
func (o PricedOrder) BillingAddress() Address            { return o.billingAddress }
func (o PricedOrder) AmountToBill() kernel.BillingAmount { return o.amountToBill }
func (o PricedOrder) PricingMethod() PricingMethod       { return o.pricingMethod }

// Lines returns a copy of the priced lines: product lines in submission order,
// followed by any comment lines.
func (o PricedOrder) Lines() []PricedOrderLine {
	return slices.Clone(o.lines)
}

// ProductLines returns only the lines that carry a product and a price.
func (o PricedOrder) ProductLines() []ProductLine {
	productLines := make([]ProductLine, 0, len(o.lines))
	for _, line := range o.lines {
		if pl, ok := line.(ProductLine); ok {
			productLines = append(productLines, pl)
		}
	}
	return productLines
}
