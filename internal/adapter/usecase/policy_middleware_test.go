package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobcast/internal/adapter/policy"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
	"jobcast/internal/core/port/mocks"
)

// fakeLimits answers EvaluateAll with a fixed result and counts full checks.
type fakeLimits struct {
	eval   *port.CheckResult
	check  *port.CheckResult
	err    error
	checks int
}

func cleanResult(id int64) *port.CheckResult {
	return &port.CheckResult{
		CampaignID:  id,
		BudgetCheck: domain.NewLimitCheckResult(domain.LimitBudget),
		DateCheck:   domain.NewLimitCheckResult(domain.LimitDate),
		CPCCheck:    domain.NewLimitCheckResult(domain.LimitCPC),
		Actions:     []domain.Action{},
		Outcomes:    []domain.ActionOutcome{},
	}
}

func (f *fakeLimits) EvaluateAll(_ context.Context, camp *domain.Campaign) *port.CheckResult {
	if f.eval != nil {
		return f.eval
	}
	return cleanResult(camp.ID)
}

func (f *fakeLimits) CheckCampaignLimits(_ context.Context, id int64) (*port.CheckResult, error) {
	f.checks++
	if f.err != nil {
		return nil, f.err
	}
	if f.check != nil {
		return f.check, nil
	}
	return cleanResult(id), nil
}

type middlewareFixture struct {
	store    *mocks.MockCampaignStore
	adapter  *mocks.MockChannelAdapter
	policies *policy.Registry
	limits   *fakeLimits
	auditor  *recordingAuditor
	mw       *PolicyMiddleware
}

func newMiddlewareFixture(t *testing.T) *middlewareFixture {
	t.Helper()
	f := &middlewareFixture{
		store:    mocks.NewMockCampaignStore(t),
		adapter:  mocks.NewMockChannelAdapter(t),
		policies: policy.NewRegistry(discardLogger()),
		limits:   &fakeLimits{},
		auditor:  &recordingAuditor{},
	}
	f.mw = NewPolicyMiddleware(f.policies, adapterMap{"jooble": f.adapter}, f.store, f.limits, f.auditor, 0, discardLogger())
	f.mw.now = func() time.Time { return fixedNow }
	return f
}

func validPayload() domain.ExternalPayload {
	return domain.ExternalPayload{
		Name:       "Backend hiring",
		Status:     "active",
		ClickPrice: decimal.RequireFromString("0.45"),
		Budget:     decimal.RequireFromString("200.00"),
		Segmentation: []domain.SegmentationRule{
			{Type: domain.RuleTitle, Value: "Go engineer", Operator: domain.OpContains},
		},
	}
}

func overBudget(id int64) *port.CheckResult {
	res := cleanResult(id)
	res.BudgetCheck.AddAction(domain.Action{Type: domain.ActionPauseCampaign, Reason: domain.ReasonBudgetExceeded})
	res.Actions = append(res.Actions, res.BudgetCheck.Actions...)
	return res
}

func TestValidateBeforeSendAcceptsCleanPayload(t *testing.T) {
	f := newMiddlewareFixture(t)
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 10), validPayload(), domain.InternalData{CampaignID: 1})

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Zero(t, f.limits.checks)
}

func TestValidateBeforeSendDetectsInternalLeak(t *testing.T) {
	f := newMiddlewareFixture(t)
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	payload := validPayload()
	payload.Extra = map[string]any{"meta": map[string]any{"maxCPC": 2.0}, "dailyBudget": 10}

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 10), payload, domain.InternalData{})

	assert.False(t, report.Valid)
	assert.Equal(t, []string{
		`payload carries internal field "dailyBudget"`,
		`payload carries internal field "maxCPC"`,
	}, report.Errors)
}

func TestValidateBeforeSendRejectsBadSegmentation(t *testing.T) {
	f := newMiddlewareFixture(t)
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).
		Return(domain.RuleValidation{Valid: false, Errors: []string{"too many title rules: 6 > 5"}})

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 10), validPayload(), domain.InternalData{CampaignID: 1})

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "too many title rules: 6 > 5")
}

func TestValidateBeforeSendRemediatesLimitViolation(t *testing.T) {
	f := newMiddlewareFixture(t)
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.limits.eval = overBudget(1)
	applied := overBudget(1)
	applied.Outcomes = []domain.ActionOutcome{{Action: applied.Actions[0], Applied: true, Detail: "paused 1 channel(s)"}}
	f.limits.check = applied

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 1000), validPayload(), domain.InternalData{CampaignID: 1})

	assert.False(t, report.Valid)
	assert.Equal(t, []string{"budget limit: budget_exceeded"}, report.Errors)
	assert.Equal(t, 1, f.limits.checks)
	require.Len(t, report.Actions, 1)
	assert.Equal(t, domain.ActionPauseCampaign, report.Actions[0].Type)
}

func TestValidateBeforeSendReportsRemediationFailure(t *testing.T) {
	f := newMiddlewareFixture(t)
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.limits.eval = overBudget(1)
	f.limits.err = errors.New("store unavailable")

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 1000), validPayload(), domain.InternalData{CampaignID: 1})

	require.Len(t, report.Actions, 1)
	assert.Equal(t, domain.ActionError, report.Actions[0].Type)
	assert.Equal(t, "store unavailable", report.Actions[0].Reason)
}

func TestValidateBeforeSendOverrides(t *testing.T) {
	f := newMiddlewareFixture(t)
	on := true
	f.policies.Register("jooble", domain.PolicySpec{AllowOverrides: &on})
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.limits.eval = overBudget(1)

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 1000), validPayload(), domain.InternalData{CampaignID: 1})

	assert.True(t, report.Valid)
	assert.Equal(t, []string{"budget limit: budget_exceeded (overridden)"}, report.Warnings)
	assert.Zero(t, f.limits.checks)
}

func TestValidateBeforeSendIgnoresUnenforcedDimension(t *testing.T) {
	f := newMiddlewareFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{EnforceBudgetLimits: &off})
	f.adapter.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true, Errors: []string{}})
	f.limits.eval = overBudget(1)

	report := f.mw.ValidateBeforeSend(context.Background(), "jooble", campaign(1000, 1000), validPayload(), domain.InternalData{CampaignID: 1})

	assert.True(t, report.Valid)
}

func TestValidateBeforeSendUnknownChannel(t *testing.T) {
	f := newMiddlewareFixture(t)

	report := f.mw.ValidateBeforeSend(context.Background(), "unknown", campaign(1000, 10), validPayload(), domain.InternalData{CampaignID: 1})

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "no adapter registered for channel unknown")
}

func TestMonitorAfterSendSkippedWithoutPostValidation(t *testing.T) {
	f := newMiddlewareFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{PostValidation: &off})

	report, err := f.mw.MonitorAfterSend(context.Background(), "jooble", 1, domain.ChannelResponse{Status: "active"})

	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
	assert.Zero(t, f.limits.checks)
}

func TestMonitorAfterSendPausesDriftedChannel(t *testing.T) {
	f := newMiddlewareFixture(t)
	camp := campaign(1000, 10)
	camp.Status = domain.StatusPaused
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.adapter.EXPECT().PauseCampaign(mock.Anything, "jb-1").Return(nil).Once()
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "jooble", domain.StatusPaused).Return(nil).Once()

	report, err := f.mw.MonitorAfterSend(context.Background(), "jooble", 1, domain.ChannelResponse{ChannelCampaignID: "jb-1", Status: "ACTIVE"})
	require.NoError(t, err)

	require.Len(t, report.Alerts, 1)
	assert.Equal(t, domain.AlertStateDrift, report.Alerts[0].Kind)
	assert.Equal(t, domain.LevelCritical, report.Alerts[0].Level)
	require.Len(t, report.Outcomes, 1)
	assert.True(t, report.Outcomes[0].Applied)
	assert.Equal(t, domain.ReasonChannelStateDrift, report.Actions[0].Reason)
	assert.Equal(t, 1, f.limits.checks)
	assert.Equal(t, []string{"post_dispatch"}, f.auditor.events())
}

func TestMonitorAfterSendLinksChannelCampaign(t *testing.T) {
	f := newMiddlewareFixture(t)
	camp := campaign(1000, 10)
	camp.Allocations[0].ChannelCampaignID = ""
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.store.EXPECT().SetChannelCampaignID(mock.Anything, int64(1), "jooble", "jb-9").Return(nil).Once()

	report, err := f.mw.MonitorAfterSend(context.Background(), "jooble", 1, domain.ChannelResponse{ChannelCampaignID: "jb-9", Status: "active"})

	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
}

func TestInternalLeaks(t *testing.T) {
	payload := validPayload()
	assert.Empty(t, internalLeaks(payload))

	payload.Extra = map[string]any{"rules": []any{map[string]any{"autoPausedReason": "x"}}}
	assert.Equal(t, []string{"autoPausedReason"}, internalLeaks(payload))
}

func TestValidateBeforeSendFollowsTargetChannelPolicy(t *testing.T) {
	cf := newFixture(t)
	off, on := false, true
	cf.policies.Register("talent", domain.PolicySpec{EnforceBudgetLimits: &off})
	cf.policies.Register("jooble", domain.PolicySpec{AutoActions: &off, EnforceBudgetLimits: &on})
	mw := NewPolicyMiddleware(cf.policies, adapterMap{"jooble": cf.jooble}, cf.store, cf.ctrl, cf.auditor, 0, discardLogger())

	// Only talent is delivering, and talent does not enforce budgets.
	camp := campaign(1000, 0)
	camp.Allocations[0].Status = domain.StatusPaused
	camp.Allocations = append(camp.Allocations, domain.ChannelAllocation{
		CampaignID: 1, ChannelID: "talent", ChannelCampaignID: "tl-1", SpentBudget: 1200, Status: domain.StatusActive,
	})
	cf.jooble.EXPECT().ValidateSegmentationRules(mock.Anything).Return(domain.RuleValidation{Valid: true})

	report := mw.ValidateBeforeSend(context.Background(), "jooble", camp, validPayload(), domain.InternalData{CampaignID: 1})

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "budget limit")
	assert.Empty(t, report.Actions)
}
