package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetInfo carries the money figures an adapter needs to build a payload.
type BudgetInfo struct {
	// TotalBudget is the explicit budget for the channel. Zero means it has
	// to be derived from the daily budget.
	TotalBudget float64
	DailyBudget float64
	ClickPrice  float64
}

// ExternalPayload is the minimal representation a channel accepts. Money is
// carried as decimals so it is rendered with fixed precision on the wire.
type ExternalPayload struct {
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	ClickPrice   decimal.Decimal    `json:"clickPrice"`
	Budget       decimal.Decimal    `json:"budget"`
	UTM          string             `json:"utm"`
	SiteURL      string             `json:"siteUrl"`
	Segmentation []SegmentationRule `json:"segmentation"`
	// Extra holds channel specific fields that have no typed home.
	Extra map[string]any `json:"extra,omitempty"`
}

// Tracking groups the parameters used to attribute channel traffic.
type Tracking struct {
	UTMSource   string `json:"utmSource"`
	UTMMedium   string `json:"utmMedium"`
	UTMCampaign string `json:"utmCampaign"`
	QueryString string `json:"queryString"`
}

// InternalData is the platform-side mirror of what was sent to a channel.
type InternalData struct {
	CampaignID   int64          `json:"campaignId"`
	ChannelID    string         `json:"channelId"`
	Config       InternalConfig `json:"config"`
	Targeting    Targeting      `json:"targeting"`
	Segmentation []InternalRule `json:"segmentation"`
	Tracking     Tracking       `json:"tracking"`
	BuiltAt      time.Time      `json:"builtAt"`
}

// ChannelResponse is what a channel answered after a dispatch.
type ChannelResponse struct {
	ChannelCampaignID string  `json:"channelCampaignId"`
	Status            string  `json:"status"`
	Accepted          bool    `json:"accepted"`
	Message           string  `json:"message,omitempty"`
	Spend             float64 `json:"spend,omitempty"`
}
