package port

import (
	"context"
	"errors"
	"time"

	"jobcast/internal/core/domain"
)

var ErrLeaseHeld = errors.New("lease held by another worker")

// Notifier delivers typed alerts. Send must not block on delivery and
// never reports delivery failures to the caller.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification)
}

// MetricsSource supplies actual spend and conversions per channel.
type MetricsSource interface {
	// GetStatistics returns the channel figures for a date range.
	GetStatistics(ctx context.Context, channelID, channelCampaignID string, from, to time.Time) (domain.ChannelStats, error)
	// ForceSyncCampaign refreshes the stored allocation actuals.
	ForceSyncCampaign(ctx context.Context, campaignID int64) error
}

// PolicyProvider serves channel policies. Get always returns a copy.
type PolicyProvider interface {
	Get(channelID string) domain.ChannelPolicy
	Register(channelID string, spec domain.PolicySpec) domain.ChannelPolicy
}

// Lease guards a key against concurrent holders, including other processes.
type Lease interface {
	// Acquire returns a release func when the key was free, or ErrLeaseHeld.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// AuditLog persists audit records.
type AuditLog interface {
	WriteBatch(ctx context.Context, records []domain.AuditRecord) error
}

// Auditor accepts audit records without blocking the caller.
type Auditor interface {
	Record(rec domain.AuditRecord)
}
