package port

import (
	"context"
	"errors"
	"time"

	"jobcast/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAllocationNotFound = errors.New("channel allocation not found")
)

// CampaignStore defines the persistence layer for campaigns and their channel
// allocations. It is an outbound port in hexagonal architecture.
// Implementations must be safe for concurrent use.
type CampaignStore interface {
	// GetCampaign returns the campaign with its allocations and parsed
	// internal config. It returns nil, nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListActiveCampaignIDs returns the ids of campaigns in status active.
	ListActiveCampaignIDs(ctx context.Context) ([]int64, error)

	// UpdateCampaignStatus sets the campaign status.
	UpdateCampaignStatus(ctx context.Context, id int64, status domain.Status) error
	// SaveInternalConfig replaces the internal config blob.
	SaveInternalConfig(ctx context.Context, id int64, cfg domain.InternalConfig) error
	// MarkMetricsSynced records when actuals were last refreshed.
	MarkMetricsSynced(ctx context.Context, id int64, at time.Time) error

	// UpdateAllocationBid persists a new bid for one channel allocation.
	UpdateAllocationBid(ctx context.Context, campaignID int64, channelID string, bid float64) error
	// UpdateAllocationStatus sets the status of one channel allocation.
	UpdateAllocationStatus(ctx context.Context, campaignID int64, channelID string, status domain.Status) error
	// UpdateAllocationActuals writes spend and conversion actuals.
	UpdateAllocationActuals(ctx context.Context, campaignID int64, channelID string, actuals domain.AllocationActuals) error
	// SetChannelCampaignID links an allocation to the id the channel assigned.
	SetChannelCampaignID(ctx context.Context, campaignID int64, channelID, channelCampaignID string) error
}
