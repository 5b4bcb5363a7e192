package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// lookback is how far a lifetime sync reaches when a campaign carries no
// usable creation or start date.
const lookback = 365 * 24 * time.Hour

// MetricsSyncer is the metrics source backed by the channel adapters. It
// reads statistics from the channels and writes the actuals to the store.
type MetricsSyncer struct {
	store    port.CampaignStore
	adapters port.AdapterRegistry
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

var _ port.MetricsSource = (*MetricsSyncer)(nil)

func NewMetricsSyncer(store port.CampaignStore, adapters port.AdapterRegistry, timeout time.Duration, logger *slog.Logger) *MetricsSyncer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MetricsSyncer{
		store:    store,
		adapters: adapters,
		timeout:  timeout,
		logger:   logger.With(slog.String("mod", "metrics_sync")),
		now:      time.Now,
	}
}

func (s *MetricsSyncer) GetStatistics(ctx context.Context, channelID, channelCampaignID string, from, to time.Time) (domain.ChannelStats, error) {
	adapter, ok := s.adapters.Adapter(channelID)
	if !ok {
		return domain.ChannelStats{}, fmt.Errorf("no adapter registered for channel %s", channelID)
	}
	return adapter.GetStatistics(ctx, channelCampaignID, from, to)
}

// ForceSyncCampaign refreshes the lifetime actuals of every dispatched
// allocation. The campaign is marked synced only if all channels answered.
func (s *MetricsSyncer) ForceSyncCampaign(ctx context.Context, campaignID int64) error {
	camp, err := s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign %d: %w", campaignID, err)
	}
	if camp == nil {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrCampaignNotFound)
	}

	now := s.now()
	from := syncStart(camp, now)

	var errs []error
	synced := 0
	for _, a := range camp.Allocations {
		if a.ChannelCampaignID == "" || a.Status == domain.StatusDeleted || a.Status == domain.StatusArchived {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		stats, err := s.GetStatistics(callCtx, a.ChannelID, a.ChannelCampaignID, from, now)
		cancel()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.ChannelID, err))
			continue
		}

		actuals := domain.AllocationActuals{
			SpentBudget:          stats.Spend,
			Clicks:               stats.Clicks,
			AchievedApplications: stats.Applications,
			CurrentCPA:           stats.CPA(),
		}
		if err := s.store.UpdateAllocationActuals(ctx, campaignID, a.ChannelID, actuals); err != nil {
			errs = append(errs, fmt.Errorf("%s: store actuals: %w", a.ChannelID, err))
			continue
		}
		synced++
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn("campaign metrics partially synced",
			slog.Int64("campaign_id", campaignID),
			slog.Int("synced", synced),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.store.MarkMetricsSynced(ctx, campaignID, now); err != nil {
		return fmt.Errorf("mark campaign %d synced: %w", campaignID, err)
	}
	s.logger.Debug("campaign metrics synced", slog.Int64("campaign_id", campaignID), slog.Int("channels", synced))
	return nil
}

func syncStart(camp *domain.Campaign, now time.Time) time.Time {
	from := camp.CreatedAt
	if start := camp.InternalConfig.StartDate; start != nil && (from.IsZero() || start.Before(from)) {
		from = *start
	}
	if from.IsZero() || from.After(now) {
		from = now.Add(-lookback)
	}
	return from
}
