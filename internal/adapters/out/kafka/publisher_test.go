package kafka_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	placekafka "placeorder/internal/adapters/out/kafka"
	"placeorder/internal/core/domain/model/events"
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct{ mock.Mock }

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

type MockGuard struct{ mock.Mock }

func (m *MockGuard) Key(orderID string) string { return "published:" + orderID }

func (m *MockGuard) Seen(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuard) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func placedEvents(t *testing.T) []events.PlaceOrderEvent {
	t.Helper()

	orderID, err := kernel.NewOrderID("order-9")
	require.NoError(t, err)
	email, err := kernel.NewEmailAddress("jane@example.com")
	require.NoError(t, err)
	address, err := order.NewAddress(order.CheckedAddress{
		AddressLine1: "Unter den Linden 1",
		City:         "Berlin",
		ZipCode:      "10117",
		State:        "Berlin",
		Country:      "DE",
	})
	require.NoError(t, err)

	return []events.PlaceOrderEvent{
		events.BillableOrderPlacedEvent{BillableOrderPlaced: events.NewBillableOrderPlaced(
			orderID, address, kernel.MustNewBillingAmount(decimal.NewFromInt(30)),
		)},
		events.AcknowledgmentSentEvent{OrderAcknowledgmentSent: events.NewOrderAcknowledgmentSent(orderID, email)},
	}
}

func TestEventPublisher_Publish_WritesKeyedRecords(t *testing.T) {
	writer := new(MockMessageWriter)
	guard := new(MockGuard)
	registry := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(registry)

	guard.On("Seen", mock.Anything, "published:order-9").Return(false, nil).Once()

	var written []kafka.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	err := placekafka.NewEventPublisher(writer, guard, m, discardLogger()).Publish(t.Context(), placedEvents(t))

	require.NoError(t, err)
	require.Len(t, written, 2)
	for _, msg := range written {
		assert.Equal(t, "order-9", string(msg.Key))
	}
	assert.Equal(t, "BillableOrderPlaced", string(written[0].Headers[0].Value))

	var record map[string]map[string]any
	require.NoError(t, json.Unmarshal(written[0].Value, &record))
	assert.Equal(t, "30", record["BillableOrderPlaced"]["amountToBill"])

	assert.InDelta(t, 1, testutil.ToFloat64(m.EventsPublished.WithLabelValues("BillableOrderPlaced", "ok")), 0)
	guard.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestEventPublisher_Publish_SkipsAlreadyPublished(t *testing.T) {
	writer := new(MockMessageWriter)
	guard := new(MockGuard)
	guard.On("Seen", mock.Anything, "published:order-9").Return(true, nil).Once()

	err := placekafka.NewEventPublisher(writer, guard, nil, discardLogger()).Publish(t.Context(), placedEvents(t))

	require.NoError(t, err)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestEventPublisher_Publish_WriteFailureClearsGuard(t *testing.T) {
	writer := new(MockMessageWriter)
	guard := new(MockGuard)
	writeErr := errors.New("leader not available")

	mock.InOrder(
		guard.On("Seen", mock.Anything, "published:order-9").Return(false, nil).Once(),
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(writeErr).Once(),
		guard.On("Forget", mock.Anything, "published:order-9").Return(nil).Once(),
	)

	err := placekafka.NewEventPublisher(writer, guard, nil, discardLogger()).Publish(t.Context(), placedEvents(t))

	require.ErrorIs(t, err, writeErr)
	guard.AssertExpectations(t)
}

func TestEventPublisher_Publish_GuardFailure(t *testing.T) {
	writer := new(MockMessageWriter)
	guard := new(MockGuard)
	guard.On("Seen", mock.Anything, "published:order-9").Return(false, errors.New("redis down")).Once()

	err := placekafka.NewEventPublisher(writer, guard, nil, discardLogger()).Publish(t.Context(), placedEvents(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "idempotency check")
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestEventPublisher_Publish_WithoutGuardOrEvents(t *testing.T) {
	writer := new(MockMessageWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()
	publisher := placekafka.NewEventPublisher(writer, nil, nil, discardLogger())

	require.NoError(t, publisher.Publish(t.Context(), nil))
	require.NoError(t, publisher.Publish(t.Context(), placedEvents(t)))
	writer.AssertNumberOfCalls(t, "WriteMessages", 1)
}

func TestNotificationSender_Send(t *testing.T) {
	email, err := kernel.NewEmailAddress("jane@example.com")
	require.NoError(t, err)
	ack := order.OrderAcknowledgment{EmailAddress: email, Letter: "<p>thanks</p>"}

	t.Run("sent", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 1 || string(msgs[0].Key) != "jane@example.com" {
				return false
			}
			var body map[string]string
			return json.Unmarshal(msgs[0].Value, &body) == nil && body["letter"] == "<p>thanks</p>"
		})).Return(nil).Once()

		result := placekafka.NewNotificationSender(writer, discardLogger()).Send(t.Context(), ack)

		assert.Equal(t, order.Sent, result)
		writer.AssertExpectations(t)
	})

	t.Run("write failure is not sent", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()

		result := placekafka.NewNotificationSender(writer, discardLogger()).Send(t.Context(), ack)

		assert.Equal(t, order.NotSent, result)
	})
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, placekafka.ParseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, placekafka.ParseBrokers(""))
}
