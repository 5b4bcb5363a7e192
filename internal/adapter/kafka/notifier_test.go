package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/internal/core/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNotifierSend(t *testing.T) {
	w := &fakeWriter{}
	n := NewNotifier(w, nil, nil)
	at := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	n.Send(context.Background(), domain.Notification{
		ID:         "n-1",
		Type:       domain.NotifyCampaignPaused,
		UserID:     9,
		CampaignID: 42,
		Data:       map[string]any{"reason": "budget_exceeded"},
		CreatedAt:  at,
	})

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, domain.NotifyCampaignPaused, got.Type)
	assert.Equal(t, "budget_exceeded", got.Data["reason"])
}

func TestNotifierSwallowsErrors(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	n := NewNotifier(w, nil, nil)

	assert.NotPanics(t, func() {
		n.Send(context.Background(), domain.Notification{ID: "n-1", Type: domain.NotifyBidsReduced, CampaignID: 1})
	})
	assert.Empty(t, w.msgs)
}

func TestNotifierSendsAfterCancel(t *testing.T) {
	w := &fakeWriter{}
	n := NewNotifier(w, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n.Send(ctx, domain.Notification{ID: "n-2", Type: domain.NotifyBudgetWarning, CampaignID: 3})

	assert.Len(t, w.msgs, 1)
}

func TestNotifierClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, NewNotifier(w, nil, nil).Close())
	assert.True(t, w.closed)
}

func TestNewWriterRequiresBrokers(t *testing.T) {
	_, err := NewWriter(nil, "topic", nil)
	assert.Error(t, err)

	w, err := NewWriter([]string{"localhost:9092"}, "topic", nil)
	require.NoError(t, err)
	assert.True(t, w.Async)
	assert.Equal(t, "topic", w.Topic)
}
