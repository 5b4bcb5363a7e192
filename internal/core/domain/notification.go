package domain

import "time"

// NotificationType is part of the fixed alert taxonomy of the sink.
type NotificationType string

const (
	NotifyBudgetWarning       NotificationType = "budget_warning"
	NotifyBudgetCritical      NotificationType = "budget_critical"
	NotifyDailyBudgetExceeded NotificationType = "daily_budget_exceeded"
	NotifyCampaignPaused      NotificationType = "campaign_paused"
	NotifyCPCExceeded         NotificationType = "cpc_exceeded"
	NotifyCampaignEnding      NotificationType = "campaign_ending"
	NotifyBidsReduced         NotificationType = "bids_reduced"
)

// Notification is a typed alert delivered fire-and-forget.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	UserID     int64            `json:"userId"`
	CampaignID int64            `json:"campaignId"`
	Data       map[string]any   `json:"data"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// AuditRecord is an append-only trace of enforcement activity.
type AuditRecord struct {
	ID         string         `json:"id"`
	CampaignID int64          `json:"campaignId"`
	ChannelID  string         `json:"channelId,omitempty"`
	Event      string         `json:"event"`
	Alerts     []Alert        `json:"alerts,omitempty"`
	Actions    []Action       `json:"actions,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
