package domain

// ChannelPolicy declares which limit dimensions the platform enforces on a
// channel's behalf and whether remediation may run automatically.
type ChannelPolicy struct {
	ChannelID           string `json:"channelId" yaml:"channel_id"`
	EnforceBudgetLimits bool   `json:"enforceBudgetLimits" yaml:"enforce_budget_limits"`
	EnforceDateLimits   bool   `json:"enforceDateLimits" yaml:"enforce_date_limits"`
	EnforceCPCLimits    bool   `json:"enforceCPCLimits" yaml:"enforce_cpc_limits"`
	AllowOverrides      bool   `json:"allowOverrides" yaml:"allow_overrides"`
	PreValidation       bool   `json:"preValidation" yaml:"pre_validation"`
	PostValidation      bool   `json:"postValidation" yaml:"post_validation"`
	AutoActions         bool   `json:"autoActions" yaml:"auto_actions"`
}

// DefaultChannelPolicy is the conservative fallback for unregistered
// channels: everything enforced, no overrides, auto-actions on.
func DefaultChannelPolicy(channelID string) ChannelPolicy {
	return ChannelPolicy{
		ChannelID:           channelID,
		EnforceBudgetLimits: true,
		EnforceDateLimits:   true,
		EnforceCPCLimits:    true,
		AllowOverrides:      false,
		PreValidation:       true,
		PostValidation:      true,
		AutoActions:         true,
	}
}

// PolicySpec is a partial policy. Nil fields keep the value of the policy
// it is merged over.
type PolicySpec struct {
	EnforceBudgetLimits *bool `json:"enforceBudgetLimits,omitempty" yaml:"enforce_budget_limits"`
	EnforceDateLimits   *bool `json:"enforceDateLimits,omitempty" yaml:"enforce_date_limits"`
	EnforceCPCLimits    *bool `json:"enforceCPCLimits,omitempty" yaml:"enforce_cpc_limits"`
	AllowOverrides      *bool `json:"allowOverrides,omitempty" yaml:"allow_overrides"`
	PreValidation       *bool `json:"preValidation,omitempty" yaml:"pre_validation"`
	PostValidation      *bool `json:"postValidation,omitempty" yaml:"post_validation"`
	AutoActions         *bool `json:"autoActions,omitempty" yaml:"auto_actions"`
}

// MergeOver applies the set fields of s on top of base.
func (s PolicySpec) MergeOver(base ChannelPolicy) ChannelPolicy {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.EnforceBudgetLimits, s.EnforceBudgetLimits)
	set(&base.EnforceDateLimits, s.EnforceDateLimits)
	set(&base.EnforceCPCLimits, s.EnforceCPCLimits)
	set(&base.AllowOverrides, s.AllowOverrides)
	set(&base.PreValidation, s.PreValidation)
	set(&base.PostValidation, s.PostValidation)
	set(&base.AutoActions, s.AutoActions)
	return base
}

// Enforces reports whether the policy enables dimension t.
func (p ChannelPolicy) Enforces(t LimitType) bool {
	switch t {
	case LimitBudget:
		return p.EnforceBudgetLimits
	case LimitDate:
		return p.EnforceDateLimits
	case LimitCPC:
		return p.EnforceCPCLimits
	}
	return false
}
