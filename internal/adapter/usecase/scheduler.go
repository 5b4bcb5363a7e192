package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"jobcast/internal/core/port"
)

// Scheduler runs the batch limit check on a fixed interval and on demand.
// Runs never overlap within a process: a run requested while another is in
// flight is skipped.
type Scheduler struct {
	uc       port.LimitsUseCase
	interval time.Duration
	logger   *slog.Logger
	running  atomic.Bool
}

func NewScheduler(uc port.LimitsUseCase, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		uc:       uc,
		interval: interval,
		logger:   logger.With(slog.String("mod", "scheduler")),
	}
}

// Run checks all active campaigns every interval until ctx is cancelled.
// The first run starts immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, ok := s.RunOnce(ctx); !ok {
			s.logger.Warn("previous limit check still running, tick skipped")
		}

		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce runs one batch check. It reports false without doing anything
// when another run is in flight.
func (s *Scheduler) RunOnce(ctx context.Context) (port.BatchResult, bool) {
	if !s.running.CompareAndSwap(false, true) {
		return port.BatchResult{}, false
	}
	defer s.running.Store(false)

	if ctx.Err() != nil {
		return port.BatchResult{}, true
	}

	start := time.Now()
	res := s.uc.CheckAllActiveCampaigns(ctx)
	s.logger.Info("limit check run",
		slog.Int("total", res.Total),
		slog.Int("failed", res.Failed),
		slog.Duration("took", time.Since(start)),
	)
	return res, true
}
