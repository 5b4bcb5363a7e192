package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"jobcast/internal/adapter/metrics"
	"jobcast/internal/core/domain"
	"jobcast/internal/core/limits"
	"jobcast/internal/core/port"
)

// ControllerConfig tunes the limits controller.
type ControllerConfig struct {
	// Concurrency bounds the campaigns checked in parallel by a batch.
	Concurrency int
	// ChannelTimeout bounds every call to an external channel.
	ChannelTimeout time.Duration
	// MetricsFreshness is the minimum age of actuals before a refresh.
	MetricsFreshness time.Duration
	// LeaseTTL is how long a campaign stays locked by one worker.
	LeaseTTL time.Duration
}

func (c ControllerConfig) withDefaults() ControllerConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	if c.ChannelTimeout <= 0 {
		c.ChannelTimeout = 30 * time.Second
	}
	if c.MetricsFreshness <= 0 {
		c.MetricsFreshness = 5 * time.Minute
	}
	if c.LeaseTTL <= 0 {
		c.LeaseTTL = 2 * time.Minute
	}
	return c
}

// ControllerDeps groups the collaborators of the limits controller. Lease,
// Notifier, Auditor and Metrics are optional.
type ControllerDeps struct {
	Store    port.CampaignStore
	Adapters port.AdapterRegistry
	Policies port.PolicyProvider
	Source   port.MetricsSource
	Notifier port.Notifier
	Lease    port.Lease
	Auditor  port.Auditor
	Metrics  *metrics.Metrics
}

// LimitsController implements port.LimitsUseCase. A check loads the
// campaign, evaluates the three dimensions concurrently with the pure
// functions of package limits and then applies the resulting actions one
// after the other.
type LimitsController struct {
	store    port.CampaignStore
	adapters port.AdapterRegistry
	policies port.PolicyProvider
	source   port.MetricsSource
	notifier port.Notifier
	lease    port.Lease
	auditor  port.Auditor
	metrics  *metrics.Metrics
	cfg      ControllerConfig
	logger   *slog.Logger
	now      func() time.Time
}

var _ port.LimitsUseCase = (*LimitsController)(nil)

func NewLimitsController(deps ControllerDeps, cfg ControllerConfig, logger *slog.Logger) *LimitsController {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Lease == nil {
		deps.Lease = NewMemoryLease()
	}
	if deps.Notifier == nil {
		deps.Notifier = NewLogNotifier(logger)
	}
	if deps.Auditor == nil {
		deps.Auditor = discardAuditor{}
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewMetrics(nil)
	}
	return &LimitsController{
		store:    deps.Store,
		adapters: deps.Adapters,
		policies: deps.Policies,
		source:   deps.Source,
		notifier: deps.Notifier,
		lease:    deps.Lease,
		auditor:  deps.Auditor,
		metrics:  deps.Metrics,
		cfg:      cfg.withDefaults(),
		logger:   logger.With(slog.String("mod", "limits")),
		now:      time.Now,
	}
}

type discardAuditor struct{}

func (discardAuditor) Record(domain.AuditRecord) {}

func leaseKey(campaignID int64) string {
	return "limits:campaign:" + strconv.FormatInt(campaignID, 10)
}

// acquire takes the campaign lease. A lease backend failure is logged and
// the work proceeds unguarded; only a lease held elsewhere stops it.
func (c *LimitsController) acquire(ctx context.Context, campaignID int64) (func(), error) {
	release, err := c.lease.Acquire(ctx, leaseKey(campaignID), c.cfg.LeaseTTL)
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, port.ErrLeaseHeld):
		return nil, err
	default:
		c.logger.Warn("lease unavailable, continuing without it",
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err),
		)
		return func() {}, nil
	}
}

// load reads the campaign and refreshes its actuals when they are stale.
func (c *LimitsController) load(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	camp, err := c.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.source == nil || !camp.MetricsStale(c.now(), c.cfg.MetricsFreshness) {
		return camp, nil
	}

	if err := c.source.ForceSyncCampaign(ctx, campaignID); err != nil {
		c.logger.Warn("metrics refresh failed, using stored actuals",
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err),
		)
		return camp, nil
	}
	fresh, err := c.store.GetCampaign(ctx, campaignID)
	if err != nil || fresh == nil {
		return camp, nil
	}
	return fresh, nil
}

// CheckCampaignLimits evaluates and remediates one campaign. The returned
// error is non-nil only when the campaign could not be loaded.
func (c *LimitsController) CheckCampaignLimits(ctx context.Context, campaignID int64) (*port.CheckResult, error) {
	start := c.now()
	defer func() { c.metrics.CheckDuration.Observe(c.now().Sub(start).Seconds()) }()

	release, err := c.acquire(ctx, campaignID)
	if errors.Is(err, port.ErrLeaseHeld) {
		c.logger.Debug("campaign locked by another worker", slog.Int64("campaign_id", campaignID))
		return &port.CheckResult{CampaignID: campaignID, Skipped: true}, nil
	}
	defer release()

	camp, err := c.load(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	res := c.evaluate(ctx, camp, checkedScope)
	res.Outcomes = c.apply(ctx, camp, res)
	c.notifyCheck(ctx, camp, res)

	if len(res.Actions) > 0 || len(res.Alerts()) > 0 {
		c.auditor.Record(domain.AuditRecord{
			CampaignID: camp.ID,
			Event:      "limits_check",
			Alerts:     res.Alerts(),
			Actions:    res.Actions,
			Details:    map[string]any{"outcomes": res.Outcomes},
			CreatedAt:  c.now().UTC(),
		})
	}
	return res, nil
}

// evalScope selects what one evaluation looks at.
type evalScope struct {
	// everyDimension evaluates all three dimensions whatever the channel
	// policies enforce.
	everyDimension bool
	// includePaused reads statistics and bids of paused channels too.
	includePaused bool
}

// checkedScope is the scope of a regular check.
var checkedScope = evalScope{}

func (s evalScope) allocations(camp *domain.Campaign) []domain.ChannelAllocation {
	if !s.includePaused {
		return camp.ActiveAllocations()
	}
	out := make([]domain.ChannelAllocation, 0, len(camp.Allocations))
	for _, a := range camp.Allocations {
		if a.Status == domain.StatusActive || a.Status == domain.StatusPaused {
			out = append(out, a)
		}
	}
	return out
}

// Evaluate runs the three dimension checks for a loaded campaign without
// applying anything. Dimensions no active channel enforces are skipped.
func (c *LimitsController) Evaluate(ctx context.Context, camp *domain.Campaign) *port.CheckResult {
	return c.evaluate(ctx, camp, checkedScope)
}

// EvaluateAll is Evaluate over every dimension. Callers filter the result
// with the policy they act for.
func (c *LimitsController) EvaluateAll(ctx context.Context, camp *domain.Campaign) *port.CheckResult {
	return c.evaluate(ctx, camp, evalScope{everyDimension: true})
}

func (c *LimitsController) evaluate(ctx context.Context, camp *domain.Campaign, scope evalScope) *port.CheckResult {
	now := c.now()
	res := &port.CheckResult{CampaignID: camp.ID}

	var g errgroup.Group
	g.Go(func() error {
		res.BudgetCheck = c.guard(domain.LimitBudget, func() domain.LimitCheckResult { return c.checkBudget(ctx, camp, now, scope) })
		return nil
	})
	g.Go(func() error {
		res.DateCheck = c.guard(domain.LimitDate, func() domain.LimitCheckResult { return c.checkDates(camp, now, scope) })
		return nil
	})
	g.Go(func() error {
		res.CPCCheck = c.guard(domain.LimitCPC, func() domain.LimitCheckResult { return c.checkCPC(ctx, camp, now, scope) })
		return nil
	})
	_ = g.Wait()

	res.Actions = make([]domain.Action, 0)
	for _, r := range []domain.LimitCheckResult{res.BudgetCheck, res.DateCheck, res.CPCCheck} {
		res.Actions = append(res.Actions, r.Actions...)
		c.metrics.Checks.WithLabelValues(string(r.Type), checkOutcome(r)).Inc()
	}
	return res
}

func checkOutcome(r domain.LimitCheckResult) string {
	switch {
	case r.Error != "":
		return "error"
	case !r.WithinLimits:
		return "exceeded"
	default:
		return "within"
	}
}

// guard turns a panic inside one dimension into that dimension's error so
// the other two still report.
func (c *LimitsController) guard(t domain.LimitType, fn func() domain.LimitCheckResult) (res domain.LimitCheckResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("limit check panicked", slog.String("dimension", string(t)), slog.Any("panic", r))
			res = domain.NewLimitCheckResult(t)
			res.Error = fmt.Sprintf("panic: %v", r)
		}
	}()
	return fn()
}

// enforced reports whether any active channel asks for dimension t. A
// campaign with no active channel is checked on every dimension.
func (c *LimitsController) enforced(camp *domain.Campaign, t domain.LimitType, scope evalScope) bool {
	if scope.everyDimension {
		return true
	}
	active := camp.ActiveAllocations()
	if len(active) == 0 || c.policies == nil {
		return true
	}
	for _, a := range active {
		if c.policies.Get(a.ChannelID).Enforces(t) {
			return true
		}
	}
	return false
}

func (c *LimitsController) checkBudget(ctx context.Context, camp *domain.Campaign, now time.Time, scope evalScope) domain.LimitCheckResult {
	if !c.enforced(camp, domain.LimitBudget, scope) {
		return domain.NewLimitCheckResult(domain.LimitBudget)
	}

	snap := limits.BudgetSnapshot{
		TotalBudget:  camp.TotalBudget,
		CurrentSpend: camp.CurrentSpend(),
	}

	var fetchErr error
	if cfg := camp.InternalConfig; cfg.DailyBudget > 0 {
		today, _, err := c.windowStats(ctx, scope.allocations(camp), cfg.StartOfDay(now), now)
		if err != nil {
			fetchErr = err
		} else {
			snap.DailyBudget = cfg.DailyBudget
			snap.TodaySpend = today.Spend
		}
	}

	res := limits.EvaluateBudget(snap)
	if fetchErr != nil {
		res.Error = "daily spend unavailable: " + fetchErr.Error()
	}
	return res
}

func (c *LimitsController) checkDates(camp *domain.Campaign, now time.Time, scope evalScope) domain.LimitCheckResult {
	if !c.enforced(camp, domain.LimitDate, scope) {
		return domain.NewLimitCheckResult(domain.LimitDate)
	}
	cfg := camp.InternalConfig
	return limits.EvaluateDates(cfg.StartDate, cfg.EndDate, now)
}

func (c *LimitsController) checkCPC(ctx context.Context, camp *domain.Campaign, now time.Time, scope evalScope) domain.LimitCheckResult {
	maxCPC := camp.InternalConfig.MaxCPC
	if maxCPC <= 0 || !c.enforced(camp, domain.LimitCPC, scope) {
		return domain.NewLimitCheckResult(domain.LimitCPC)
	}
	allocs := scope.allocations(camp)

	snap := limits.CPCSnapshot{MaxCPC: maxCPC}
	var errs []error

	week, perChannel, err := c.windowStats(ctx, allocs, now.Add(-7*24*time.Hour), now)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Spend7d, snap.Applications7d = week.Spend, week.Applications

	day, _, err := c.windowStats(ctx, allocs, now.Add(-24*time.Hour), now)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Spend24h, snap.Applications24h = day.Spend, day.Applications

	for _, a := range allocs {
		cpa := a.CurrentCPA
		if s, ok := perChannel[a.ChannelID]; ok && s.Applications > 0 {
			cpa = s.CPA()
		}
		snap.Bids = append(snap.Bids, limits.ChannelBid{ChannelID: a.ChannelID, Bid: a.BidAmount, CPA: cpa})
	}

	res := limits.EvaluateCPC(snap)
	if err := errors.Join(errs...); err != nil {
		res.Error = "channel statistics unavailable: " + err.Error()
	}
	return res
}

// windowStats sums the statistics of every dispatched allocation in allocs
// over [from, to]. Channels that fail are left out of the total and
// reported in the joined error.
func (c *LimitsController) windowStats(ctx context.Context, allocs []domain.ChannelAllocation, from, to time.Time) (domain.ChannelStats, map[string]domain.ChannelStats, error) {
	var (
		total domain.ChannelStats
		errs  []error
	)
	per := make(map[string]domain.ChannelStats)
	if c.source == nil {
		return total, per, errors.New("no metrics source configured")
	}

	for _, a := range allocs {
		if a.ChannelCampaignID == "" {
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.ChannelTimeout)
		s, err := c.source.GetStatistics(callCtx, a.ChannelID, a.ChannelCampaignID, from, to)
		cancel()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.ChannelID, err))
			continue
		}
		per[a.ChannelID] = s
		total = total.Add(s)
	}
	return total, per, errors.Join(errs...)
}

// CheckAllActiveCampaigns checks every active campaign with bounded
// parallelism. Every campaign settles on its own; none aborts the batch.
func (c *LimitsController) CheckAllActiveCampaigns(ctx context.Context) port.BatchResult {
	ids, err := c.store.ListActiveCampaignIDs(ctx)
	if err != nil {
		c.logger.Error("list active campaigns", slog.Any("error", err))
		return port.BatchResult{Results: []port.CampaignOutcome{}, Error: err.Error()}
	}

	results := make([]port.CampaignOutcome, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(c.cfg.Concurrency)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = c.checkOne(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	batch := port.BatchResult{Total: len(ids), Results: results}
	for _, r := range results {
		switch {
		case r.Error != "":
			batch.Failed++
			c.metrics.BatchCampaigns.WithLabelValues("failed").Inc()
		case r.Result != nil && r.Result.Skipped:
			batch.Successful++
			c.metrics.BatchCampaigns.WithLabelValues("skipped").Inc()
		default:
			batch.Successful++
			c.metrics.BatchCampaigns.WithLabelValues("ok").Inc()
		}
	}

	c.logger.Info("batch limit check finished",
		slog.Int("total", batch.Total),
		slog.Int("successful", batch.Successful),
		slog.Int("failed", batch.Failed),
	)
	return batch
}

func (c *LimitsController) checkOne(ctx context.Context, id int64) (out port.CampaignOutcome) {
	out.CampaignID = id
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("campaign check panicked", slog.Int64("campaign_id", id), slog.Any("panic", r))
			out.Result = nil
			out.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	res, err := c.CheckCampaignLimits(ctx, id)
	if err != nil {
		c.logger.Warn("campaign check failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		out.Error = err.Error()
		return out
	}
	out.Result = res
	return out
}
