package notification

import (
	"context"
	"log/slog"

	"placeorder/internal/core/domain/model/order"
)

// LogSender records acknowledgments in the log instead of delivering them. It
// is used when no notification topic is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) LogSender {
	return LogSender{logger: logger.With("component", "log_notification_sender")}
}

func (s LogSender) Send(ctx context.Context, acknowledgment order.OrderAcknowledgment) order.SendResult {
	if ctx.Err() != nil {
		return order.NotSent
	}

	s.logger.InfoContext(ctx, "acknowledgment sent",
		"email", acknowledgment.EmailAddress.Value(),
		"letter_bytes", len(acknowledgment.Letter),
	)
	return order.Sent
}
