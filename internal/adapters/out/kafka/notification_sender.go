package kafka

import (
	"context"
	"log/slog"

	"placeorder/internal/core/domain/model/order"
)

type acknowledgmentMessage struct {
	EmailAddress string `json:"emailAddress"`
	Letter       string `json:"letter"`
}

// NotificationSender hands acknowledgment letters to the mailer through a
// topic, keyed by recipient. A failed write is logged and reported as NotSent.
type NotificationSender struct {
	writer MessageWriter
	logger *slog.Logger
}

func NewNotificationSender(writer MessageWriter, logger *slog.Logger) *NotificationSender {
	return &NotificationSender{
		writer: writer,
		logger: logger.With("component", "kafka_notification_sender"),
	}
}

func (s *NotificationSender) Send(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult {
	email := acknowledgment.EmailAddress.Value()

	msg, err := jsonMessage(email, nil, acknowledgmentMessage{
		EmailAddress: email,
		Letter:       string(acknowledgment.Letter),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode acknowledgment", "error", err)
		return order.NotSent
	}

	if err = s.writer.WriteMessages(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to send acknowledgment", "email", email, "error", err)
		return order.NotSent
	}

	return order.Sent
}
