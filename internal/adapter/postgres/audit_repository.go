package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// AuditRepository stores limit enforcement audit records.
type AuditRepository struct {
	db DB
}

var _ port.AuditLog = (*AuditRepository)(nil)

func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// WriteBatch inserts records in one round trip. Records already stored are
// ignored, so a retried batch does not duplicate rows.
func (r *AuditRepository) WriteBatch(ctx context.Context, records []domain.AuditRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		alerts, err := json.Marshal(nonNil(rec.Alerts))
		if err != nil {
			return fmt.Errorf("encode alerts: %w", err)
		}
		actions, err := json.Marshal(nonNil(rec.Actions))
		if err != nil {
			return fmt.Errorf("encode actions: %w", err)
		}
		details := rec.Details
		if details == nil {
			details = map[string]any{}
		}
		detailsRaw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("encode details: %w", err)
		}
		batch.Queue(`
            INSERT INTO limits_audit_log (id, campaign_id, channel_id, event, alerts, actions, details, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            ON CONFLICT (id) DO NOTHING`,
			rec.ID, rec.CampaignID, rec.ChannelID, rec.Event, alerts, actions, detailsRaw, rec.CreatedAt)
	}

	br := r.db.SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

// ListByCampaign returns the latest records of a campaign, newest first.
func (r *AuditRepository) ListByCampaign(ctx context.Context, campaignID int64, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `
        SELECT id, campaign_id, channel_id, event, alerts, actions, details, created_at
        FROM limits_audit_log WHERE campaign_id = $1
        ORDER BY created_at DESC LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		var (
			rec                     domain.AuditRecord
			alerts, actions, detail []byte
		)
		if err := row.Scan(&rec.ID, &rec.CampaignID, &rec.ChannelID, &rec.Event, &alerts, &actions, &detail, &rec.CreatedAt); err != nil {
			return rec, err
		}
		if err := json.Unmarshal(alerts, &rec.Alerts); err != nil {
			return rec, fmt.Errorf("decode alerts of %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal(actions, &rec.Actions); err != nil {
			return rec, fmt.Errorf("decode actions of %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal(detail, &rec.Details); err != nil {
			return rec, fmt.Errorf("decode details of %s: %w", rec.ID, err)
		}
		return rec, nil
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
