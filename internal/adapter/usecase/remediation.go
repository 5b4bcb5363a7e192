package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/limits"
	"jobcast/internal/core/port"
)

// apply executes the actions of a check in dimension order. A pause ends
// remediation: later pauses and bid reductions are reported as skipped.
func (c *LimitsController) apply(ctx context.Context, camp *domain.Campaign, res *port.CheckResult) []domain.ActionOutcome {
	outcomes := make([]domain.ActionOutcome, 0, len(res.Actions))
	paused := false

	for _, check := range []domain.LimitCheckResult{res.BudgetCheck, res.DateCheck, res.CPCCheck} {
		for _, action := range check.Actions {
			var out domain.ActionOutcome
			switch {
			case paused:
				out = domain.ActionOutcome{Action: action, Detail: "campaign already paused in this check"}
			case action.Type.IsPause():
				out = c.applyPause(ctx, camp, check.Type, action)
				paused = out.Applied || camp.Status == domain.StatusPaused
			case action.Type == domain.ActionReduceBids:
				out = c.applyBidReduction(ctx, camp, action)
			default:
				out = domain.ActionOutcome{Action: action, Detail: "unsupported action"}
			}

			c.metrics.Actions.WithLabelValues(string(action.Type), actionOutcome(out)).Inc()
			if out.Error != "" {
				c.logger.Warn("remediation failed",
					slog.Int64("campaign_id", camp.ID),
					slog.String("action", string(action.Type)),
					slog.String("reason", action.Reason),
					slog.String("error", out.Error),
				)
			}
			outcomes = append(outcomes, out)
		}
	}
	return outcomes
}

func actionOutcome(o domain.ActionOutcome) string {
	switch {
	case o.Applied:
		return "applied"
	case o.Error != "":
		return "failed"
	default:
		return "skipped"
	}
}

// remediable reports whether the channel's policy lets the engine act on
// dimension t automatically.
func (c *LimitsController) remediable(channelID string, t domain.LimitType) bool {
	if c.policies == nil {
		return true
	}
	p := c.policies.Get(channelID)
	return p.AutoActions && p.Enforces(t)
}

func (c *LimitsController) applyPause(ctx context.Context, camp *domain.Campaign, t domain.LimitType, action domain.Action) domain.ActionOutcome {
	active := camp.ActiveAllocations()
	eligible := func(a domain.ChannelAllocation) bool { return c.remediable(a.ChannelID, t) }

	if len(active) > 0 {
		permitted := false
		for _, a := range active {
			permitted = permitted || eligible(a)
		}
		if !permitted {
			return domain.ActionOutcome{Action: action, Detail: "automatic remediation disabled by channel policy"}
		}
	}

	res, err := c.pause(ctx, camp, action, eligible)
	if err != nil {
		return domain.ActionOutcome{Action: action, Error: err.Error()}
	}
	if res.AlreadyPaused && len(res.PausedChannels) == 0 && len(res.FailedChannels) == 0 {
		return domain.ActionOutcome{Action: action, Detail: "campaign already paused"}
	}
	out := domain.ActionOutcome{Action: action, Applied: true, Detail: fmt.Sprintf("paused %d channel(s)", len(res.PausedChannels))}
	if len(res.FailedChannels) > 0 {
		out.Error = fmt.Sprintf("%d channel(s) failed to pause", len(res.FailedChannels))
	}
	return out
}

// pause marks the campaign paused, records why, and pauses every active
// allocation accepted by eligible. Channel failures do not stop the others.
func (c *LimitsController) pause(ctx context.Context, camp *domain.Campaign, action domain.Action, eligible func(domain.ChannelAllocation) bool) (*port.PauseOutcome, error) {
	out := &port.PauseOutcome{
		CampaignID:     camp.ID,
		Reason:         action.Reason,
		AlreadyPaused:  camp.Status == domain.StatusPaused,
		PausedChannels: []string{},
		FailedChannels: map[string]string{},
	}

	if !out.AlreadyPaused {
		if err := c.store.UpdateCampaignStatus(ctx, camp.ID, domain.StatusPaused); err != nil {
			return nil, fmt.Errorf("set campaign %d paused: %w", camp.ID, err)
		}
		camp.Status = domain.StatusPaused

		now := c.now().UTC()
		cfg := camp.InternalConfig
		cfg.AutoPausedReason = action.Reason
		cfg.AutoPausedAt = &now
		if err := c.store.SaveInternalConfig(ctx, camp.ID, cfg); err != nil {
			c.logger.Warn("record pause reason", slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
		} else {
			camp.InternalConfig = cfg
		}
	}

	for _, a := range camp.ActiveAllocations() {
		if eligible != nil && !eligible(a) {
			continue
		}
		if err := c.pauseAllocation(ctx, camp.ID, a); err != nil {
			out.FailedChannels[a.ChannelID] = err.Error()
			continue
		}
		out.PausedChannels = append(out.PausedChannels, a.ChannelID)
		setAllocationStatus(camp, a.ChannelID, domain.StatusPaused)
	}

	if out.AlreadyPaused && len(out.PausedChannels) == 0 {
		return out, nil
	}

	c.logger.Info("campaign paused",
		slog.Int64("campaign_id", camp.ID),
		slog.String("reason", action.Reason),
		slog.Any("paused_channels", out.PausedChannels),
		slog.Int("failed_channels", len(out.FailedChannels)),
	)

	c.notify(ctx, camp, domain.NotifyCampaignPaused, map[string]any{
		"reason":         action.Reason,
		"data":           action.Data,
		"pausedChannels": out.PausedChannels,
		"failedChannels": out.FailedChannels,
	})
	if action.Type == domain.ActionPauseCampaignDaily {
		c.notify(ctx, camp, domain.NotifyDailyBudgetExceeded, action.Data)
	}
	return out, nil
}

func (c *LimitsController) pauseAllocation(ctx context.Context, campaignID int64, a domain.ChannelAllocation) error {
	if a.ChannelCampaignID != "" {
		adapter, ok := c.adapters.Adapter(a.ChannelID)
		if !ok {
			return fmt.Errorf("no adapter registered for channel %s", a.ChannelID)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.ChannelTimeout)
		err := adapter.PauseCampaign(callCtx, a.ChannelCampaignID)
		cancel()
		if err != nil {
			return err
		}
	}
	return c.store.UpdateAllocationStatus(ctx, campaignID, a.ChannelID, domain.StatusPaused)
}

func setAllocationStatus(camp *domain.Campaign, channelID string, s domain.Status) {
	for i := range camp.Allocations {
		if camp.Allocations[i].ChannelID == channelID {
			camp.Allocations[i].Status = s
		}
	}
}

func (c *LimitsController) applyBidReduction(ctx context.Context, camp *domain.Campaign, action domain.Action) domain.ActionOutcome {
	maxCPC := camp.InternalConfig.MaxCPC
	aggregate, _ := action.Data["currentCPA"].(float64)
	judged, _ := action.Data[limits.ChannelCPAKey].(map[string]float64)

	res, err := c.reduceBids(ctx, camp, maxCPC, aggregate, judged, action.Reason)
	if err != nil {
		return domain.ActionOutcome{Action: action, Error: err.Error()}
	}
	out := domain.ActionOutcome{Action: action, Applied: res.Reduced > 0, Detail: fmt.Sprintf("reduced %d bid(s)", res.Reduced)}
	if res.Reduced == 0 {
		out.Detail = "no eligible channel bid to reduce"
	}
	for _, d := range res.Details {
		if d.Error != "" {
			out.Error = fmt.Sprintf("%s: %s", d.ChannelID, d.Error)
			break
		}
	}
	return out
}

// reduceBids lowers the bid of every active channel that violates maxCPC,
// through its own bid or CPA. A channel's CPA is taken from judged when
// present, then from its stored CPA, then from aggregateCPA. Channels whose
// policy disables CPC enforcement or automatic actions are left alone.
func (c *LimitsController) reduceBids(ctx context.Context, camp *domain.Campaign, maxCPC, aggregateCPA float64, judged map[string]float64, reason string) (*port.BidReduction, error) {
	if maxCPC <= 0 {
		return nil, &domain.ValidationError{Problems: []string{"maxCPC must be positive"}}
	}

	out := &port.BidReduction{Details: []port.BidChange{}}
	for _, a := range camp.ActiveAllocations() {
		if !c.remediable(a.ChannelID, domain.LimitCPC) {
			c.logger.Debug("bid reduction skipped by channel policy",
				slog.Int64("campaign_id", camp.ID),
				slog.String("channel", a.ChannelID),
			)
			continue
		}

		cpa, ok := judged[a.ChannelID]
		if !ok || cpa <= 0 {
			cpa = a.CurrentCPA
		}
		if cpa <= 0 {
			cpa = aggregateCPA
		}
		bid := limits.ChannelBid{ChannelID: a.ChannelID, Bid: a.BidAmount, CPA: cpa}
		if !limits.NeedsReduction(bid, maxCPC) {
			continue
		}
		target := limits.TargetBid(a.BidAmount, cpa, maxCPC)
		if a.BidAmount > 0 && target >= a.BidAmount {
			continue
		}

		change := port.BidChange{ChannelID: a.ChannelID, OldBid: a.BidAmount, NewBid: target}
		if err := c.updateBid(ctx, camp.ID, a, target); err != nil {
			change.Error = err.Error()
		} else {
			change.Applied = true
			out.Reduced++
			for i := range camp.Allocations {
				if camp.Allocations[i].ChannelID == a.ChannelID {
					camp.Allocations[i].BidAmount = target
				}
			}
		}
		out.Details = append(out.Details, change)
	}

	c.logger.Info("bids enforced",
		slog.Int64("campaign_id", camp.ID),
		slog.String("reason", reason),
		slog.Float64("max_cpc", maxCPC),
		slog.Int("reduced", out.Reduced),
	)
	if out.Reduced > 0 {
		c.notify(ctx, camp, domain.NotifyBidsReduced, map[string]any{
			"reason":  reason,
			"maxCPC":  maxCPC,
			"reduced": out.Reduced,
			"details": out.Details,
		})
	}
	return out, nil
}

func (c *LimitsController) updateBid(ctx context.Context, campaignID int64, a domain.ChannelAllocation, bid float64) error {
	if a.ChannelCampaignID != "" {
		adapter, ok := c.adapters.Adapter(a.ChannelID)
		if !ok {
			return fmt.Errorf("no adapter registered for channel %s", a.ChannelID)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.ChannelTimeout)
		err := adapter.UpdateBid(callCtx, a.ChannelCampaignID, bid)
		cancel()
		if err != nil {
			return err
		}
	}
	return c.store.UpdateAllocationBid(ctx, campaignID, a.ChannelID, bid)
}

// PauseCampaignDueToLimits pauses the campaign and all its active channels,
// regardless of channel policy.
func (c *LimitsController) PauseCampaignDueToLimits(ctx context.Context, campaignID int64, reason string, data map[string]any) (*port.PauseOutcome, error) {
	release, err := c.acquire(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	defer release()

	camp, err := c.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	action := domain.Action{Type: domain.ActionPauseCampaign, Reason: reason, Data: data}
	out, err := c.pause(ctx, camp, action, nil)
	if err != nil {
		return nil, err
	}
	c.auditor.Record(domain.AuditRecord{
		CampaignID: campaignID,
		Event:      "manual_pause",
		Actions:    []domain.Action{action},
		Details:    map[string]any{"outcome": out},
		CreatedAt:  c.now().UTC(),
	})
	return out, nil
}

// EnforceCPCLimits lowers the bids of channels exceeding maxCPC. The
// aggregate CPA stands in for channels without CPA of their own.
func (c *LimitsController) EnforceCPCLimits(ctx context.Context, campaignID int64, maxCPC float64, reason string) (*port.BidReduction, error) {
	release, err := c.acquire(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	defer release()

	camp, err := c.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var spend float64
	var apps int64
	for _, a := range camp.ActiveAllocations() {
		spend += a.SpentBudget
		apps += a.AchievedApplications
	}
	aggregate := 0.0
	if apps > 0 {
		aggregate = spend / float64(apps)
	}

	out, err := c.reduceBids(ctx, camp, maxCPC, aggregate, nil, reason)
	if err != nil {
		return nil, err
	}
	c.auditor.Record(domain.AuditRecord{
		CampaignID: campaignID,
		Event:      "enforce_cpc",
		Actions:    []domain.Action{{Type: domain.ActionReduceBids, Reason: reason, Data: map[string]any{"maxCPC": maxCPC}}},
		Details:    map[string]any{"outcome": out},
		CreatedAt:  c.now().UTC(),
	})
	return out, nil
}

// ResumeCampaign reactivates a paused campaign. It refuses with a
// *domain.LimitExceededError while any check would pause it again.
func (c *LimitsController) ResumeCampaign(ctx context.Context, campaignID int64) error {
	release, err := c.acquire(ctx, campaignID)
	if err != nil {
		return err
	}
	defer release()

	camp, err := c.load(ctx, campaignID)
	if err != nil {
		return err
	}
	switch camp.Status {
	case domain.StatusActive:
		return nil
	case domain.StatusDeleted, domain.StatusArchived:
		return &domain.ValidationError{Problems: []string{fmt.Sprintf("campaign %d is %s and cannot be resumed", campaignID, camp.Status)}}
	}

	// Every channel is paused at this point; their spend still counts.
	res := c.evaluate(ctx, camp, evalScope{includePaused: true})
	for _, check := range []domain.LimitCheckResult{res.BudgetCheck, res.DateCheck, res.CPCCheck} {
		for _, a := range check.Actions {
			if a.Type.IsPause() {
				return &domain.LimitExceededError{CampaignID: campaignID, Dimension: check.Type, Reason: a.Reason}
			}
		}
	}

	if err := c.store.UpdateCampaignStatus(ctx, campaignID, domain.StatusActive); err != nil {
		return fmt.Errorf("set campaign %d active: %w", campaignID, err)
	}
	cfg := camp.InternalConfig
	cfg.AutoPausedReason = ""
	cfg.AutoPausedAt = nil
	if err := c.store.SaveInternalConfig(ctx, campaignID, cfg); err != nil {
		c.logger.Warn("clear pause reason", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}

	var errs []error
	resumed := []string{}
	for _, a := range camp.Allocations {
		if a.Status != domain.StatusPaused {
			continue
		}
		if err := c.resumeAllocation(ctx, campaignID, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.ChannelID, err))
			continue
		}
		resumed = append(resumed, a.ChannelID)
	}

	c.logger.Info("campaign resumed",
		slog.Int64("campaign_id", campaignID),
		slog.Any("resumed_channels", resumed),
		slog.Int("failed_channels", len(errs)),
	)
	c.auditor.Record(domain.AuditRecord{
		CampaignID: campaignID,
		Event:      "resume",
		Details:    map[string]any{"resumedChannels": resumed, "failedChannels": len(errs)},
		CreatedAt:  c.now().UTC(),
	})

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("resume channels: %w", err)
	}
	return nil
}

func (c *LimitsController) resumeAllocation(ctx context.Context, campaignID int64, a domain.ChannelAllocation) error {
	if a.ChannelCampaignID != "" {
		adapter, ok := c.adapters.Adapter(a.ChannelID)
		if !ok {
			return fmt.Errorf("no adapter registered for channel %s", a.ChannelID)
		}
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.ChannelTimeout)
		err := adapter.ResumeCampaign(callCtx, a.ChannelCampaignID)
		cancel()
		if err != nil {
			return err
		}
	}
	return c.store.UpdateAllocationStatus(ctx, campaignID, a.ChannelID, domain.StatusActive)
}

// getCampaign loads without the metrics refresh; manual operations act on
// stored state.
func (c *LimitsController) getCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	camp, err := c.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign %d: %w", campaignID, err)
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, port.ErrCampaignNotFound)
	}
	return camp, nil
}
