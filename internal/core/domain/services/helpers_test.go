package services_test

import (
	"context"
	"testing"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ProductExists(ctx context.Context, code kernel.ProductCode) (bool, error) {
	args := m.Called(ctx, code.Value())
	return args.Bool(0), args.Error(1)
}

type MockAddressChecker struct{ mock.Mock }

func (m *MockAddressChecker) CheckAddress(
	ctx context.Context,
	address order.UnvalidatedAddress,
) (order.CheckedAddress, error) {
	args := m.Called(ctx, address)
	if fn, ok := args.Get(0).(func(context.Context, order.UnvalidatedAddress) (order.CheckedAddress, error)); ok {
		return fn(ctx, address)
	}
	return args.Get(0).(order.CheckedAddress), args.Error(1)
}

type MockLetterRenderer struct{ mock.Mock }

func (m *MockLetterRenderer) Render(o order.PricedOrderWithShippingMethod) order.HTMLString {
	args := m.Called(o)
	return args.Get(0).(order.HTMLString)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult {
	args := m.Called(ctx, acknowledgment)
	return args.Get(0).(order.SendResult)
}

func californiaAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "1 Market St",
		City:         "San Francisco",
		ZipCode:      "94105",
		State:        "CA",
		Country:      "US",
	}
}

func texasAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "500 Congress Ave",
		City:         "Austin",
		ZipCode:      "78701",
		State:        "TX",
		Country:      "US",
	}
}

func germanAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "Unter den Linden 1",
		City:         "Berlin",
		ZipCode:      "10117",
		State:        "Berlin",
		Country:      "DE",
	}
}

func unvalidatedOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "order-42",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jane@example.com",
			VipStatus:    "Normal",
		},
		ShippingAddress: californiaAddress(),
		BillingAddress:  californiaAddress(),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "line-1", ProductCode: "W1234", Quantity: 3},
		},
	}
}

func newLine(t *testing.T, id, code string, quantity float64) order.ValidatedOrderLine {
	t.Helper()

	lineID, err := kernel.NewOrderLineID(id)
	require.NoError(t, err)
	productCode, err := kernel.NewProductCode(code)
	require.NoError(t, err)
	q, err := kernel.NewOrderQuantity(productCode, quantity)
	require.NoError(t, err)
	line, err := order.NewValidatedOrderLine(lineID, productCode, q)
	require.NoError(t, err)

	return line
}

type orderOptions struct {
	vipStatus string
	address   order.UnvalidatedAddress
	method    order.PricingMethod
}

func newValidatedOrder(t *testing.T, opts orderOptions, lines ...order.ValidatedOrderLine) order.ValidatedOrder {
	t.Helper()

	if opts.vipStatus == "" {
		opts.vipStatus = "Normal"
	}
	if opts.address.Country == "" {
		opts.address = californiaAddress()
	}
	if opts.method == nil {
		opts.method = order.StandardPricing{}
	}

	orderID, err := kernel.NewOrderID("order-42")
	require.NoError(t, err)
	customer, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@example.com",
		VipStatus:    opts.vipStatus,
	})
	require.NoError(t, err)
	address, err := order.NewAddress(order.CheckedAddress(opts.address))
	require.NoError(t, err)

	validated, err := order.NewValidatedOrder(orderID, customer, address, address, lines, opts.method)
	require.NoError(t, err)

	return validated
}

func price(amount string) kernel.Price {
	return kernel.MustNewPrice(decimal.RequireFromString(amount))
}

func fixedStandardPrices(amount string) services.GetStandardPrices {
	p := price(amount)
	return func() services.GetProductPrice {
		return func(kernel.ProductCode) kernel.Price { return p }
	}
}

func promotionCatalog(overrides map[kernel.PromotionCode]map[string]kernel.Price) services.GetPromotionPrices {
	return func(code kernel.PromotionCode) services.TryGetProductPrice {
		prices := overrides[code]
		return func(product kernel.ProductCode) (kernel.Price, bool) {
			p, ok := prices[product.Value()]
			return p, ok
		}
	}
}

func newPricedOrder(t *testing.T, opts orderOptions, lines ...order.ValidatedOrderLine) order.PricedOrder {
	t.Helper()

	resolve := services.GetPricingFunction(fixedStandardPrices("10"), promotionCatalog(nil))
	priced, err := services.PriceOrder(resolve, newValidatedOrder(t, opts, lines...))
	require.NoError(t, err)

	return priced
}

func assertPrice(t *testing.T, expected string, actual kernel.Price) {
	t.Helper()

	assert.True(t, actual.Value().Equal(decimal.RequireFromString(expected)),
		"expected price %s, got %s", expected, actual)
}
