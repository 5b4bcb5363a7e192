package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobcast/internal/adapter/policy"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
	"jobcast/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type adapterMap map[string]port.ChannelAdapter

func (m adapterMap) Adapter(id string) (port.ChannelAdapter, bool) {
	a, ok := m[id]
	return a, ok
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Send(_ context.Context, msg domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *recordingNotifier) types() []domain.NotificationType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.NotificationType, len(n.sent))
	for i, s := range n.sent {
		out[i] = s.Type
	}
	return out
}

type recordingAuditor struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

func (a *recordingAuditor) Record(rec domain.AuditRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, rec)
}

func (a *recordingAuditor) events() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.records))
	for i, r := range a.records {
		out[i] = r.Event
	}
	return out
}

type controllerFixture struct {
	store    *mocks.MockCampaignStore
	source   *mocks.MockMetricsSource
	jooble   *mocks.MockChannelAdapter
	talent   *mocks.MockChannelAdapter
	policies *policy.Registry
	notifier *recordingNotifier
	auditor  *recordingAuditor
	lease    *MemoryLease
	ctrl     *LimitsController
}

func newFixture(t *testing.T) *controllerFixture {
	t.Helper()
	f := &controllerFixture{
		store:    mocks.NewMockCampaignStore(t),
		source:   mocks.NewMockMetricsSource(t),
		jooble:   mocks.NewMockChannelAdapter(t),
		talent:   mocks.NewMockChannelAdapter(t),
		policies: policy.NewRegistry(discardLogger()),
		notifier: &recordingNotifier{},
		auditor:  &recordingAuditor{},
		lease:    NewMemoryLease(),
	}
	f.ctrl = NewLimitsController(ControllerDeps{
		Store:    f.store,
		Adapters: adapterMap{"jooble": f.jooble, "talent": f.talent},
		Policies: f.policies,
		Source:   f.source,
		Notifier: f.notifier,
		Lease:    f.lease,
		Auditor:  f.auditor,
	}, ControllerConfig{ChannelTimeout: time.Second, Concurrency: 2}, discardLogger())
	f.ctrl.now = func() time.Time { return fixedNow }
	return f
}

// campaign returns a synced, active campaign with one jooble allocation.
func campaign(total, spent float64) *domain.Campaign {
	synced := fixedNow.Add(-time.Minute)
	return &domain.Campaign{
		ID:             1,
		UserID:         9,
		Name:           "Backend hiring",
		Status:         domain.StatusActive,
		TotalBudget:    total,
		InternalConfig: domain.InternalConfig{}.WithDefaults(),
		LastSyncedAt:   &synced,
		Allocations: []domain.ChannelAllocation{{
			CampaignID:        1,
			ChannelID:         "jooble",
			ChannelCampaignID: "jb-1",
			SpentBudget:       spent,
			BidAmount:         1.5,
			Status:            domain.StatusActive,
		}},
	}
}

func TestCheckCampaignLimitsBudgetWarning(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 850), nil)

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, res.BudgetCheck.WithinLimits)
	require.Len(t, res.BudgetCheck.Alerts, 1)
	assert.Equal(t, domain.LevelWarning, res.BudgetCheck.Alerts[0].Level)
	assert.Empty(t, res.Actions)
	assert.Equal(t, []domain.NotificationType{domain.NotifyBudgetWarning}, f.notifier.types())
	assert.Equal(t, []string{"limits_check"}, f.auditor.events())
}

func TestCheckCampaignLimitsPausesOnBudgetExceeded(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 1000), nil)
	f.store.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusPaused).Return(nil).Once()
	f.store.EXPECT().
		SaveInternalConfig(mock.Anything, int64(1), mock.MatchedBy(func(cfg domain.InternalConfig) bool {
			return cfg.AutoPausedReason == domain.ReasonBudgetExceeded && cfg.AutoPausedAt != nil
		})).
		Return(nil).Once()
	f.jooble.EXPECT().PauseCampaign(mock.Anything, "jb-1").Return(nil).Once()
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "jooble", domain.StatusPaused).Return(nil).Once()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.Actions, 1)
	assert.Equal(t, domain.ActionPauseCampaign, res.Actions[0].Type)
	assert.Equal(t, domain.ReasonBudgetExceeded, res.Actions[0].Reason)
	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Applied)
	assert.Empty(t, res.Outcomes[0].Error)
	assert.Contains(t, f.notifier.types(), domain.NotifyCampaignPaused)
}

func TestCheckCampaignLimitsDailyPause(t *testing.T) {
	f := newFixture(t)
	camp := campaign(0, 500)
	camp.InternalConfig.DailyBudget = 100
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", fixedNow.Truncate(24*time.Hour), fixedNow).
		Return(domain.ChannelStats{Spend: 120}, nil)
	f.store.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusPaused).Return(nil)
	f.store.EXPECT().SaveInternalConfig(mock.Anything, int64(1), mock.Anything).Return(nil)
	f.jooble.EXPECT().PauseCampaign(mock.Anything, "jb-1").Return(nil)
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "jooble", domain.StatusPaused).Return(nil)

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.Actions, 1)
	assert.Equal(t, domain.ActionPauseCampaignDaily, res.Actions[0].Type)
	assert.Equal(t, domain.ReasonDailyBudgetExceeded, res.Actions[0].Reason)
	assert.ElementsMatch(t,
		[]domain.NotificationType{domain.NotifyCampaignPaused, domain.NotifyDailyBudgetExceeded},
		f.notifier.types(),
	)
}

func TestCheckCampaignLimitsChannelFailureDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 600)
	camp.Allocations = append(camp.Allocations, domain.ChannelAllocation{
		CampaignID: 1, ChannelID: "talent", ChannelCampaignID: "tl-1", SpentBudget: 500, Status: domain.StatusActive,
	})
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.store.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusPaused).Return(nil)
	f.store.EXPECT().SaveInternalConfig(mock.Anything, int64(1), mock.Anything).Return(nil)
	f.jooble.EXPECT().PauseCampaign(mock.Anything, "jb-1").Return(errors.New("jooble down"))
	f.talent.EXPECT().PauseCampaign(mock.Anything, "tl-1").Return(nil)
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "talent", domain.StatusPaused).Return(nil).Once()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Applied)
	assert.Contains(t, res.Outcomes[0].Error, "1 channel(s) failed")
	assert.Equal(t, "paused 1 channel(s)", res.Outcomes[0].Detail)
}

func TestCheckCampaignLimitsDimensionErrorIsIsolated(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 100)
	start := fixedNow.Add(-10 * 24 * time.Hour)
	end := fixedNow.Add(12 * time.Hour)
	camp.InternalConfig.DailyBudget = 100
	camp.InternalConfig.StartDate = &start
	camp.InternalConfig.EndDate = &end
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", mock.Anything, mock.Anything).
		Return(domain.ChannelStats{}, errors.New("timeout"))

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	assert.Contains(t, res.BudgetCheck.Error, "timeout")
	assert.True(t, res.DateCheck.WithinLimits)
	require.Len(t, res.DateCheck.Alerts, 1)
	assert.Equal(t, domain.LevelWarning, res.DateCheck.Alerts[0].Level)
	assert.Equal(t, []domain.NotificationType{domain.NotifyCampaignEnding}, f.notifier.types())
}

func TestCheckCampaignLimitsReducesBids(t *testing.T) {
	f := newFixture(t)
	camp := campaign(0, 0)
	camp.InternalConfig.MaxCPC = 2.0
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", mock.Anything, fixedNow).
		RunAndReturn(func(_ context.Context, _, _ string, from, to time.Time) (domain.ChannelStats, error) {
			if to.Sub(from) > 24*time.Hour {
				return domain.ChannelStats{Spend: 300, Applications: 100}, nil
			}
			return domain.ChannelStats{Spend: 30, Applications: 10}, nil
		})
	f.jooble.EXPECT().UpdateBid(mock.Anything, "jb-1", 1.0).Return(nil).Once()
	f.store.EXPECT().UpdateAllocationBid(mock.Anything, int64(1), "jooble", 1.0).Return(nil).Once()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.CPCCheck.Actions, 1)
	assert.Equal(t, domain.ReasonCPCExceeded, res.CPCCheck.Actions[0].Reason)
	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Applied)
	assert.Equal(t, "reduced 1 bid(s)", res.Outcomes[0].Detail)
	assert.ElementsMatch(t, []domain.NotificationType{domain.NotifyCPCExceeded, domain.NotifyBidsReduced}, f.notifier.types())
}

func TestCheckCampaignLimitsReducesBidsOnWeeklyChannelCPA(t *testing.T) {
	f := newFixture(t)
	camp := campaign(0, 0)
	camp.InternalConfig.MaxCPC = 2.0
	// Lifetime CPA is healthy; the last seven days are not.
	camp.Allocations[0].CurrentCPA = 1.8
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", mock.Anything, fixedNow).
		Return(domain.ChannelStats{Spend: 300, Applications: 100}, nil)
	f.jooble.EXPECT().UpdateBid(mock.Anything, "jb-1", 1.0).Return(nil).Once()
	f.store.EXPECT().UpdateAllocationBid(mock.Anything, int64(1), "jooble", 1.0).Return(nil).Once()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 1)
	assert.True(t, res.Outcomes[0].Applied)
	assert.Equal(t, "reduced 1 bid(s)", res.Outcomes[0].Detail)
}

func TestCheckCampaignLimitsStoresBidSentToChannel(t *testing.T) {
	f := newFixture(t)
	camp := campaign(0, 0)
	camp.InternalConfig.MaxCPC = 2.5
	camp.Allocations[0].BidAmount = 2.8
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", mock.Anything, fixedNow).
		Return(domain.ChannelStats{Spend: 300, Applications: 100}, nil)
	// 2.8 * 2.5 / 3 = 2.3333..., both sides get whole cents.
	f.jooble.EXPECT().UpdateBid(mock.Anything, "jb-1", 2.33).Return(nil).Once()
	f.store.EXPECT().UpdateAllocationBid(mock.Anything, int64(1), "jooble", 2.33).Return(nil).Once()

	_, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)
}

func TestCheckCampaignLimitsSkipsWhenLeaseHeld(t *testing.T) {
	f := newFixture(t)
	release, err := f.lease.Acquire(context.Background(), leaseKey(1), time.Minute)
	require.NoError(t, err)
	defer release()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestCheckCampaignLimitsRefreshesStaleMetrics(t *testing.T) {
	f := newFixture(t)
	stale := campaign(1000, 100)
	stale.LastSyncedAt = nil
	fresh := campaign(1000, 850)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(stale, nil).Once()
	f.source.EXPECT().ForceSyncCampaign(mock.Anything, int64(1)).Return(nil).Once()
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(fresh, nil).Once()

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.BudgetCheck.Alerts, 1)
	assert.InDelta(t, 0.85, res.BudgetCheck.Alerts[0].Value, 1e-9)
}

func TestCheckCampaignLimitsNotFound(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, nil)

	_, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)

	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestCheckCampaignLimitsRespectsDisabledAutoActions(t *testing.T) {
	f := newFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{AutoActions: &off})
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 1200), nil)

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 1)
	assert.False(t, res.Outcomes[0].Applied)
	assert.Contains(t, res.Outcomes[0].Detail, "disabled by channel policy")
}

func TestCheckCampaignLimitsSkipsDimensionNoChannelEnforces(t *testing.T) {
	f := newFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{EnforceBudgetLimits: &off})
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 1200), nil)

	res, err := f.ctrl.CheckCampaignLimits(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, res.BudgetCheck.WithinLimits)
	assert.Empty(t, res.Actions)
}

func TestCheckAllActiveCampaignsIsolatesFailures(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListActiveCampaignIDs(mock.Anything).Return([]int64{1, 2, 3}, nil)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 10), nil)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(nil, errors.New("connection reset"))
	three := campaign(1000, 10)
	three.ID = 3
	f.store.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(three, nil)

	res := f.ctrl.CheckAllActiveCampaigns(context.Background())

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 3)
	assert.Equal(t, int64(2), res.Results[1].CampaignID)
	assert.Contains(t, res.Results[1].Error, "connection reset")
}

func TestCheckAllActiveCampaignsListError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListActiveCampaignIDs(mock.Anything).Return(nil, errors.New("db down"))

	res := f.ctrl.CheckAllActiveCampaigns(context.Background())

	assert.Equal(t, 0, res.Total)
	assert.Equal(t, "db down", res.Error)
}

func TestPauseCampaignDueToLimitsIgnoresPolicy(t *testing.T) {
	f := newFixture(t)
	off := false
	f.policies.Register("jooble", domain.PolicySpec{AutoActions: &off})
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(1000, 10), nil)
	f.store.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusPaused).Return(nil)
	f.store.EXPECT().SaveInternalConfig(mock.Anything, int64(1), mock.Anything).Return(nil)
	f.jooble.EXPECT().PauseCampaign(mock.Anything, "jb-1").Return(nil)
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "jooble", domain.StatusPaused).Return(nil)

	out, err := f.ctrl.PauseCampaignDueToLimits(context.Background(), 1, "manual", map[string]any{"by": "ops"})
	require.NoError(t, err)

	assert.False(t, out.AlreadyPaused)
	assert.Equal(t, []string{"jooble"}, out.PausedChannels)
	assert.Empty(t, out.FailedChannels)
	assert.Contains(t, f.auditor.events(), "manual_pause")
}

func TestEnforceCPCLimitsSkipsChannelsByPolicy(t *testing.T) {
	f := newFixture(t)
	off := false
	f.policies.Register("talent", domain.PolicySpec{EnforceCPCLimits: &off})
	camp := campaign(0, 0)
	camp.Allocations[0].BidAmount = 3.0
	camp.Allocations[0].SpentBudget = 100
	camp.Allocations[0].AchievedApplications = 100
	camp.Allocations = append(camp.Allocations, domain.ChannelAllocation{
		CampaignID: 1, ChannelID: "talent", ChannelCampaignID: "tl-1", BidAmount: 5, Status: domain.StatusActive,
	})
	near := mock.MatchedBy(func(b float64) bool { return math.Abs(b-1.9) < 1e-9 })
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.jooble.EXPECT().UpdateBid(mock.Anything, "jb-1", near).Return(nil).Once()
	f.store.EXPECT().UpdateAllocationBid(mock.Anything, int64(1), "jooble", near).Return(nil).Once()

	out, err := f.ctrl.EnforceCPCLimits(context.Background(), 1, 2.0, "manual")
	require.NoError(t, err)

	assert.Equal(t, 1, out.Reduced)
	require.Len(t, out.Details, 1)
	assert.Equal(t, "jooble", out.Details[0].ChannelID)
	assert.Equal(t, 3.0, out.Details[0].OldBid)
	assert.InDelta(t, 1.9, out.Details[0].NewBid, 1e-9)
}

func TestEnforceCPCLimitsRejectsNonPositiveMax(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign(0, 0), nil)

	_, err := f.ctrl.EnforceCPCLimits(context.Background(), 1, 0, "manual")

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestResumeCampaignRefusedWhileOverBudget(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 1000)
	camp.Status = domain.StatusPaused
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)

	err := f.ctrl.ResumeCampaign(context.Background(), 1)

	var limErr *domain.LimitExceededError
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, domain.LimitBudget, limErr.Dimension)
	assert.Equal(t, domain.ReasonBudgetExceeded, limErr.Reason)
}

func TestResumeCampaignRefusedWhileDailyBudgetSpent(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 100)
	camp.Status = domain.StatusPaused
	camp.Allocations[0].Status = domain.StatusPaused
	camp.InternalConfig.DailyBudget = 100
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.source.EXPECT().
		GetStatistics(mock.Anything, "jooble", "jb-1", mock.Anything, fixedNow).
		Return(domain.ChannelStats{Spend: 150}, nil)

	err := f.ctrl.ResumeCampaign(context.Background(), 1)

	var limErr *domain.LimitExceededError
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, domain.LimitBudget, limErr.Dimension)
	assert.Equal(t, domain.ReasonDailyBudgetExceeded, limErr.Reason)
	f.store.AssertNotCalled(t, "UpdateCampaignStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestResumeCampaign(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 100)
	camp.Status = domain.StatusPaused
	camp.Allocations[0].Status = domain.StatusPaused
	pausedAt := fixedNow.Add(-time.Hour)
	camp.InternalConfig.AutoPausedReason = domain.ReasonBudgetExceeded
	camp.InternalConfig.AutoPausedAt = &pausedAt

	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)
	f.store.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusActive).Return(nil)
	f.store.EXPECT().
		SaveInternalConfig(mock.Anything, int64(1), mock.MatchedBy(func(cfg domain.InternalConfig) bool {
			return cfg.AutoPausedReason == "" && cfg.AutoPausedAt == nil
		})).
		Return(nil)
	f.jooble.EXPECT().ResumeCampaign(mock.Anything, "jb-1").Return(nil)
	f.store.EXPECT().UpdateAllocationStatus(mock.Anything, int64(1), "jooble", domain.StatusActive).Return(nil)

	require.NoError(t, f.ctrl.ResumeCampaign(context.Background(), 1))
	assert.Contains(t, f.auditor.events(), "resume")
}

func TestResumeArchivedCampaignFails(t *testing.T) {
	f := newFixture(t)
	camp := campaign(1000, 100)
	camp.Status = domain.StatusArchived
	f.store.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(camp, nil)

	err := f.ctrl.ResumeCampaign(context.Background(), 1)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
