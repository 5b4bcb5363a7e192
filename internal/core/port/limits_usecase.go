package port

import (
	"context"

	"jobcast/internal/core/domain"
)

// LimitsUseCase defines the operational surface of the enforcement engine.
// It is the primary port used by the scheduler, the admin HTTP endpoints and
// the CLI. None of the methods panic; failures show up in the results.
type LimitsUseCase interface {
	// CheckCampaignLimits evaluates budget, date and CPC limits for one
	// campaign and applies the resulting actions. An error is returned only
	// when the campaign cannot be loaded.
	CheckCampaignLimits(ctx context.Context, campaignID int64) (*CheckResult, error)

	// CheckAllActiveCampaigns runs CheckCampaignLimits over every active
	// campaign, isolating failures per campaign.
	CheckAllActiveCampaigns(ctx context.Context) BatchResult

	// PauseCampaignDueToLimits pauses the campaign and every active channel
	// allocation.
	PauseCampaignDueToLimits(ctx context.Context, campaignID int64, reason string, data map[string]any) (*PauseOutcome, error)

	// EnforceCPCLimits lowers the bids of channels exceeding maxCPC.
	EnforceCPCLimits(ctx context.Context, campaignID int64, maxCPC float64, reason string) (*BidReduction, error)

	// ResumeCampaign reactivates a paused campaign if no limit forbids it.
	ResumeCampaign(ctx context.Context, campaignID int64) error
}

// CheckResult aggregates the three dimension checks for a campaign.
type CheckResult struct {
	CampaignID  int64                   `json:"campaignId"`
	BudgetCheck domain.LimitCheckResult `json:"budgetCheck"`
	DateCheck   domain.LimitCheckResult `json:"dateCheck"`
	CPCCheck    domain.LimitCheckResult `json:"cpcCheck"`
	Actions     []domain.Action         `json:"actions"`
	Outcomes    []domain.ActionOutcome  `json:"outcomes"`
	// Skipped is set when another worker held the campaign lease.
	Skipped bool `json:"skipped,omitempty"`
}

// Alerts returns the alerts of all three checks in dimension order.
func (r *CheckResult) Alerts() []domain.Alert {
	out := make([]domain.Alert, 0, len(r.BudgetCheck.Alerts)+len(r.DateCheck.Alerts)+len(r.CPCCheck.Alerts))
	out = append(out, r.BudgetCheck.Alerts...)
	out = append(out, r.DateCheck.Alerts...)
	return append(out, r.CPCCheck.Alerts...)
}

// BatchResult summarises a run over all active campaigns.
type BatchResult struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []CampaignOutcome `json:"results"`
	// Error is set when the active campaigns could not be listed.
	Error string `json:"error,omitempty"`
}

// CampaignOutcome is the per-campaign entry of a batch.
type CampaignOutcome struct {
	CampaignID int64        `json:"campaignId"`
	Result     *CheckResult `json:"result,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// PauseOutcome reports what a pause did per channel.
type PauseOutcome struct {
	CampaignID     int64             `json:"campaignId"`
	Reason         string            `json:"reason"`
	AlreadyPaused  bool              `json:"alreadyPaused"`
	PausedChannels []string          `json:"pausedChannels"`
	FailedChannels map[string]string `json:"failedChannels,omitempty"`
}

// BidReduction reports the bids lowered by EnforceCPCLimits.
type BidReduction struct {
	Reduced int         `json:"reduced"`
	Details []BidChange `json:"details"`
}

// BidChange is one channel's bid adjustment.
type BidChange struct {
	ChannelID string  `json:"channelId"`
	OldBid    float64 `json:"oldBid"`
	NewBid    float64 `json:"newBid"`
	Applied   bool    `json:"applied"`
	Error     string  `json:"error,omitempty"`
}
