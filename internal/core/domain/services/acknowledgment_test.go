package services_test

import (
	"testing"

	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcknowledge(t *testing.T) {
	priced := newPricedOrder(t, orderOptions{}, newLine(t, "line-1", "W1234", 3))
	withShipping := services.AddShippingInfo(services.CalculateShippingCost, priced)
	letter := order.HTMLString("<p>Thanks</p>")
	expectedAcknowledgment := order.OrderAcknowledgment{
		EmailAddress: priced.CustomerInfo().EmailAddress(),
		Letter:       letter,
	}

	t.Run("sent yields the acknowledgment", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockNotificationSender)
		mock.InOrder(
			renderer.On("Render", withShipping).Return(letter).Once(),
			sender.On("Send", mock.Anything, expectedAcknowledgment).Return(order.Sent).Once(),
		)

		sent := services.Acknowledge(t.Context(), renderer, sender, withShipping)

		require.NotNil(t, sent)
		assert.Equal(t, "order-42", sent.OrderID().Value())
		assert.Equal(t, "jane@example.com", sent.EmailAddress().Value())
		renderer.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("not sent yields nothing and is not retried", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockNotificationSender)
		renderer.On("Render", withShipping).Return(letter).Once()
		sender.On("Send", mock.Anything, expectedAcknowledgment).Return(order.NotSent).Once()

		sent := services.Acknowledge(t.Context(), renderer, sender, withShipping)

		assert.Nil(t, sent)
		sender.AssertNumberOfCalls(t, "Send", 1)
	})
}
