package domain

// LimitType names one of the three enforced dimensions.
type LimitType string

const (
	LimitBudget LimitType = "budget"
	LimitDate   LimitType = "date"
	LimitCPC    LimitType = "cpc"
)

// AlertLevel grades an advisory alert.
type AlertLevel string

const (
	LevelWarning  AlertLevel = "warning"
	LevelCritical AlertLevel = "critical"
)

// Alert kinds.
const (
	AlertBudget      = "budget"
	AlertDailyBudget = "daily_budget"
	AlertTime        = "time"
	AlertCPC         = "cpc"
	AlertCPCTrend    = "cpc_trend"
	AlertStateDrift  = "state_drift"
)

// Alert is an advisory finding of a limit check.
type Alert struct {
	Kind      string     `json:"kind"`
	Level     AlertLevel `json:"level"`
	Message   string     `json:"message"`
	Value     float64    `json:"value"`
	Threshold float64    `json:"threshold"`
}

// ActionType is the remediation requested by a check.
type ActionType string

const (
	ActionPauseCampaign      ActionType = "pause_campaign"
	ActionPauseCampaignDaily ActionType = "pause_campaign_daily"
	ActionReduceBids         ActionType = "reduce_bids"
	// ActionError records a remediation that failed inside validation.
	ActionError ActionType = "error"
)

// Action reasons.
const (
	ReasonBudgetExceeded      = "budget_exceeded"
	ReasonDailyBudgetExceeded = "daily_budget_exceeded"
	ReasonNotStartedYet       = "not_started_yet"
	ReasonCampaignEnded       = "campaign_ended"
	ReasonCPCExceeded         = "cpc_exceeded"
	ReasonBidAboveMaxCPC      = "bid_above_max_cpc"
	ReasonChannelStateDrift   = "channel_state_drift"
)

// IsPause reports whether the action pauses the campaign.
func (t ActionType) IsPause() bool {
	return t == ActionPauseCampaign || t == ActionPauseCampaignDaily
}

// Action is a remediation produced by a check and consumed immediately.
type Action struct {
	Type   ActionType     `json:"type"`
	Reason string         `json:"reason"`
	Data   map[string]any `json:"data,omitempty"`
}

// LimitCheckResult is the ephemeral outcome of one dimension check.
type LimitCheckResult struct {
	Type         LimitType `json:"type"`
	WithinLimits bool      `json:"withinLimits"`
	Alerts       []Alert   `json:"alerts"`
	Actions      []Action  `json:"actions"`
	Error        string    `json:"error,omitempty"`
}

// NewLimitCheckResult returns an empty, within-limits result for t.
func NewLimitCheckResult(t LimitType) LimitCheckResult {
	return LimitCheckResult{Type: t, WithinLimits: true, Alerts: []Alert{}, Actions: []Action{}}
}

// AddAction appends a and marks the result as out of limits.
func (r *LimitCheckResult) AddAction(a Action) {
	r.Actions = append(r.Actions, a)
	r.WithinLimits = false
}

// ActionOutcome records how an applied action went.
type ActionOutcome struct {
	Action  Action `json:"action"`
	Applied bool   `json:"applied"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}
