package notification_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"placeorder/internal/adapters/out/notification"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedOrder(t *testing.T, firstName, promotion string) order.PricedOrderWithShippingMethod {
	t.Helper()

	lineID, err := kernel.NewOrderLineID("line-1")
	require.NoError(t, err)
	code, err := kernel.NewProductCode("G123")
	require.NoError(t, err)
	quantity, err := kernel.NewOrderQuantity(code, 0.5)
	require.NoError(t, err)
	line, err := order.NewValidatedOrderLine(lineID, code, quantity)
	require.NoError(t, err)

	orderID, err := kernel.NewOrderID("order-7")
	require.NoError(t, err)
	customer, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
		FirstName:    firstName,
		LastName:     "Doe",
		EmailAddress: "jane@example.com",
		VipStatus:    "Normal",
	})
	require.NoError(t, err)
	address, err := order.NewAddress(order.CheckedAddress{
		AddressLine1: "1 Market St",
		City:         "San Francisco",
		ZipCode:      "94105",
		State:        "CA",
		Country:      "US",
	})
	require.NoError(t, err)

	validated, err := order.NewValidatedOrder(
		orderID, customer, address, address,
		[]order.ValidatedOrderLine{line}, order.NewPricingMethod(promotion),
	)
	require.NoError(t, err)

	unitPrice := kernel.MustNewPrice(decimal.NewFromInt(8))
	resolve := services.GetPricingFunction(
		func() services.GetProductPrice { return func(kernel.ProductCode) kernel.Price { return unitPrice } },
		func(kernel.PromotionCode) services.TryGetProductPrice { return nil },
	)
	priced, err := services.PriceOrder(resolve, validated)
	require.NoError(t, err)

	return services.AddShippingInfo(services.CalculateShippingCost, priced)
}

func TestTemplateRenderer_Render(t *testing.T) {
	renderer, err := notification.NewTemplateRenderer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	letter := string(renderer.Render(pricedOrder(t, "Jane", "SPRING")))

	assert.Contains(t, letter, "Dear Jane Doe,")
	assert.Contains(t, letter, "order order-7")
	assert.Contains(t, letter, "Fedex24")
	assert.Contains(t, letter, "<td>G123</td><td>0.5 kg</td><td>4.00</td>")
	assert.Contains(t, letter, "<em>Applied promotion SPRING</em>")
	assert.Contains(t, letter, "Shipping: 5.00")
	assert.Contains(t, letter, "Amount to bill: 4.00")
}

func TestTemplateRenderer_EscapesCustomerInput(t *testing.T) {
	renderer, err := notification.NewTemplateRenderer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	letter := string(renderer.Render(pricedOrder(t, "<b>Jane</b>", "")))

	assert.NotContains(t, letter, "<b>Jane</b>")
	assert.Contains(t, letter, "&lt;b&gt;Jane&lt;/b&gt;")
}

func TestTemplateRenderer_FallsBackToPlainLetter(t *testing.T) {
	var logs bytes.Buffer
	renderer, err := notification.NewTemplateRendererFrom(
		"{{.FirstName}} {{.Missing}}",
		slog.New(slog.NewTextHandler(&logs, nil)),
	)
	require.NoError(t, err)

	letter := string(renderer.Render(pricedOrder(t, "Jane", "")))

	assert.Equal(t, "<p>Dear Jane Doe, thank you for your order order-7. Amount to bill: 4.00.</p>", letter)
	assert.Contains(t, logs.String(), "acknowledgment template failed")
}

func TestNewTemplateRendererFrom_RejectsBadTemplate(t *testing.T) {
	_, err := notification.NewTemplateRendererFrom("{{.FirstName", slog.Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse acknowledgment template")
}
