package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobcast/internal/adapter/metrics"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

const (
	auditBufferSize    = 10000
	auditBatchSize     = 100
	auditFlushInterval = 500 * time.Millisecond
	auditWriteTimeout  = 10 * time.Second
)

// AuditTrail collects audit records off the hot path and writes them to
// the audit log in batches, on a timer or when a batch fills up. Stop
// drains whatever is still queued.
type AuditTrail struct {
	ch      chan domain.AuditRecord
	log     port.AuditLog
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ port.Auditor = (*AuditTrail)(nil)

func NewAuditTrail(log port.AuditLog, m *metrics.Metrics, logger *slog.Logger) *AuditTrail {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &AuditTrail{
		ch:      make(chan domain.AuditRecord, auditBufferSize),
		log:     log,
		metrics: m,
		logger:  logger.With(slog.String("mod", "audit")),
	}
}

func (a *AuditTrail) Start() {
	a.wg.Add(1)
	go a.worker()
}

// Stop refuses new records, waits for the worker to flush and returns.
func (a *AuditTrail) Stop() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.ch)
	a.mu.Unlock()

	a.logger.Info("stopping audit trail, flushing buffer")
	a.wg.Wait()
	a.logger.Info("audit trail stopped")
}

// Record queues rec. It never blocks: a full buffer drops the record.
func (a *AuditTrail) Record(rec domain.AuditRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		a.logger.Warn("audit record dropped: trail is stopping", slog.String("id", rec.ID))
		return
	}

	select {
	case a.ch <- rec:
		a.metrics.AuditBufferFill.Set(float64(len(a.ch)))
	default:
		a.logger.Error("audit buffer overflow",
			slog.Int64("campaign_id", rec.CampaignID),
			slog.String("event", rec.Event),
		)
	}
}

func (a *AuditTrail) worker() {
	defer a.wg.Done()

	batch := make([]domain.AuditRecord, 0, auditBatchSize)
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		// The caller's context may already be gone at shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := a.log.WriteBatch(ctx, batch); err != nil {
			a.logger.Error("audit flush failed", slog.Int("records", len(batch)), slog.Any("error", err))
		}
		cancel()
		batch = batch[:0]
		a.metrics.AuditBufferFill.Set(float64(len(a.ch)))
	}

	for {
		select {
		case rec, ok := <-a.ch:
			if !ok {
				flush()
				return
			}
			batch = append(batch, rec)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
