package usecase

import (
	"context"
	"log/slog"

	"jobcast/internal/core/domain"
)

// LogNotifier is the notification sink used when no broker is configured.
// It writes every notification as a structured log line.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With(slog.String("mod", "notifier"))}
}

func (n *LogNotifier) Send(ctx context.Context, msg domain.Notification) {
	n.logger.InfoContext(ctx, "notification",
		slog.String("id", msg.ID),
		slog.String("type", string(msg.Type)),
		slog.Int64("campaign_id", msg.CampaignID),
		slog.Int64("user_id", msg.UserID),
		slog.Any("data", msg.Data),
	)
}
