package port

import (
	"context"
	"time"

	"jobcast/internal/core/domain"
)

// ChannelAdapter is the contract every external advertising channel
// implements. The core never sees the channel wire format.
type ChannelAdapter interface {
	// ChannelID returns the identifier the channel is registered under.
	ChannelID() string

	// BuildPayload translates the campaign into the minimal external payload.
	BuildPayload(c domain.Campaign, offers []domain.Offer, budget domain.BudgetInfo) (domain.ExternalPayload, error)
	// BuildInternalData returns the richer internal mirror of the payload.
	BuildInternalData(c domain.Campaign, offers []domain.Offer, budget domain.BudgetInfo) domain.InternalData
	// BuildSegmentationRules derives deduplicated, truncated targeting rules.
	BuildSegmentationRules(offers []domain.Offer) []domain.SegmentationRule
	// ValidateSegmentationRules re-checks count and operator invariants.
	ValidateSegmentationRules(rules []domain.SegmentationRule) domain.RuleValidation

	CreateCampaign(ctx context.Context, payload domain.ExternalPayload) (domain.ChannelResponse, error)
	EditCampaign(ctx context.Context, channelCampaignID string, payload domain.ExternalPayload) (domain.ChannelResponse, error)
	PauseCampaign(ctx context.Context, channelCampaignID string) error
	ResumeCampaign(ctx context.Context, channelCampaignID string) error
	DeleteCampaign(ctx context.Context, channelCampaignID string) error
	UpdateBid(ctx context.Context, channelCampaignID string, bid float64) error
	GetStatistics(ctx context.Context, channelCampaignID string, from, to time.Time) (domain.ChannelStats, error)
}

// AdapterRegistry resolves a channel id to its adapter.
type AdapterRegistry interface {
	Adapter(channelID string) (ChannelAdapter, bool)
}
