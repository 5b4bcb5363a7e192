package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"jobcast/internal/adapter/metrics"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// Writer is the part of *kafka.Writer the notifier uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier publishes notifications to a Kafka topic, keyed by campaign id so
// the notifications of one campaign stay ordered. Delivery is asynchronous:
// Send never blocks on the broker and failures only reach the log.
type Notifier struct {
	writer  Writer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ port.Notifier = (*Notifier)(nil)

// NewWriter builds the async writer used in production.
func NewWriter(brokers []string, topic string, logger *slog.Logger) (*kafka.Writer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka notifier requires at least one broker")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("mod", "notifier"))
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Error("notification delivery failed", slog.Int("messages", len(msgs)), slog.Any("error", err))
			}
		},
	}, nil
}

func NewNotifier(w Writer, m *metrics.Metrics, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &Notifier{writer: w, metrics: m, logger: logger.With(slog.String("mod", "notifier"))}
}

func (n *Notifier) Send(ctx context.Context, msg domain.Notification) {
	value, err := json.Marshal(msg)
	if err != nil {
		n.metrics.Notifications.WithLabelValues(string(msg.Type), "error").Inc()
		n.logger.Error("encode notification", slog.String("id", msg.ID), slog.Any("error", err))
		return
	}

	err = n.writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.CampaignID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(msg.Type)},
			{Key: "id", Value: []byte(msg.ID)},
		},
		Time: msg.CreatedAt,
	})
	if err != nil {
		n.metrics.Notifications.WithLabelValues(string(msg.Type), "error").Inc()
		n.logger.Error("publish notification",
			slog.String("id", msg.ID),
			slog.String("type", string(msg.Type)),
			slog.Any("error", err),
		)
		return
	}
	n.logger.Debug("notification queued", slog.String("id", msg.ID), slog.String("type", string(msg.Type)))
}

func (n *Notifier) Close() error {
	if err := n.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}
