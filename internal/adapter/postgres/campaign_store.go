package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// CampaignStore implements port.CampaignStore using pgx for PostgreSQL.
type CampaignStore struct {
	db     DB
	logger *slog.Logger
}

var _ port.CampaignStore = (*CampaignStore)(nil)

// NewCampaignStore returns a new store instance.
func NewCampaignStore(db DB, logger *slog.Logger) *CampaignStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignStore{db: db, logger: logger.With(slog.String("mod", "campaign_store"))}
}

// GetCampaign returns the campaign with its allocations. A malformed
// internal config is logged and replaced by the defaults.
func (s *CampaignStore) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		rawConfig []byte
	)
	err := s.db.QueryRow(ctx, `
        SELECT id, user_id, name, status, total_budget, target_applications, site_url,
               internal_config, last_synced_at, created_at, updated_at
        FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Status, &c.TotalBudget, &c.TargetApplications, &c.SiteURL,
			&rawConfig, &c.LastSyncedAt, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.InternalConfig, err = domain.ParseInternalConfig(rawConfig)
	if err != nil {
		s.logger.Warn("malformed internal config, using defaults", slog.Int64("campaign_id", id), slog.Any("error", err))
	}

	rows, err := s.db.Query(ctx, `
        SELECT campaign_id, channel_id, channel_campaign_id, allocated_budget, spent_budget,
               clicks, achieved_applications, current_cpa, bid_amount, status
        FROM channel_allocations WHERE campaign_id = $1 ORDER BY channel_id`, id)
	if err != nil {
		return nil, err
	}
	c.Allocations, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChannelAllocation, error) {
		var a domain.ChannelAllocation
		err := row.Scan(&a.CampaignID, &a.ChannelID, &a.ChannelCampaignID, &a.AllocatedBudget, &a.SpentBudget,
			&a.Clicks, &a.AchievedApplications, &a.CurrentCPA, &a.BidAmount, &a.Status)
		return a, err
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActiveCampaignIDs returns the ids of active campaigns in id order.
func (s *CampaignStore) ListActiveCampaignIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.Query(ctx, `SELECT id FROM campaigns WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (s *CampaignStore) UpdateCampaignStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid campaign status %q", status)
	}
	tag, err := s.db.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return campaignAffected(tag, err, id)
}

func (s *CampaignStore) SaveInternalConfig(ctx context.Context, id int64, cfg domain.InternalConfig) error {
	raw, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encode internal config: %w", err)
	}
	tag, err := s.db.Exec(ctx, `UPDATE campaigns SET internal_config = $1, updated_at = now() WHERE id = $2`, raw, id)
	return campaignAffected(tag, err, id)
}

func (s *CampaignStore) MarkMetricsSynced(ctx context.Context, id int64, at time.Time) error {
	tag, err := s.db.Exec(ctx, `UPDATE campaigns SET last_synced_at = $1 WHERE id = $2`, at.UTC(), id)
	return campaignAffected(tag, err, id)
}

func (s *CampaignStore) UpdateAllocationBid(ctx context.Context, campaignID int64, channelID string, bid float64) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE channel_allocations SET bid_amount = $1, updated_at = now()
        WHERE campaign_id = $2 AND channel_id = $3`, bid, campaignID, channelID)
	return allocationAffected(tag, err, campaignID, channelID)
}

func (s *CampaignStore) UpdateAllocationStatus(ctx context.Context, campaignID int64, channelID string, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid allocation status %q", status)
	}
	tag, err := s.db.Exec(ctx, `
        UPDATE channel_allocations SET status = $1, updated_at = now()
        WHERE campaign_id = $2 AND channel_id = $3`, status, campaignID, channelID)
	return allocationAffected(tag, err, campaignID, channelID)
}

func (s *CampaignStore) UpdateAllocationActuals(ctx context.Context, campaignID int64, channelID string, a domain.AllocationActuals) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE channel_allocations
        SET spent_budget = $1, clicks = $2, achieved_applications = $3, current_cpa = $4, updated_at = now()
        WHERE campaign_id = $5 AND channel_id = $6`,
		a.SpentBudget, a.Clicks, a.AchievedApplications, a.CurrentCPA, campaignID, channelID)
	return allocationAffected(tag, err, campaignID, channelID)
}

func (s *CampaignStore) SetChannelCampaignID(ctx context.Context, campaignID int64, channelID, channelCampaignID string) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE channel_allocations SET channel_campaign_id = $1, updated_at = now()
        WHERE campaign_id = $2 AND channel_id = $3`, channelCampaignID, campaignID, channelID)
	return allocationAffected(tag, err, campaignID, channelID)
}

func campaignAffected(tag pgconn.CommandTag, err error, id int64) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, port.ErrCampaignNotFound)
	}
	return nil
}

func allocationAffected(tag pgconn.CommandTag, err error, campaignID int64, channelID string) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d channel %s: %w", campaignID, channelID, port.ErrAllocationNotFound)
	}
	return nil
}
