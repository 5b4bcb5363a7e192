package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// limitsRunner is the part of the limits controller the middleware drives.
type limitsRunner interface {
	EvaluateAll(ctx context.Context, camp *domain.Campaign) *port.CheckResult
	CheckCampaignLimits(ctx context.Context, campaignID int64) (*port.CheckResult, error)
}

// ValidationReport is the verdict of ValidateBeforeSend. Errors block the
// dispatch; warnings do not.
type ValidationReport struct {
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Actions  []domain.Action `json:"actions"`
}

// MonitorReport is what MonitorAfterSend found and did.
type MonitorReport struct {
	Alerts   []domain.Alert         `json:"alerts"`
	Actions  []domain.Action        `json:"actions"`
	Outcomes []domain.ActionOutcome `json:"outcomes"`
}

// PolicyMiddleware wraps a channel dispatch with the checks the channel's
// policy asks for.
type PolicyMiddleware struct {
	policies port.PolicyProvider
	adapters port.AdapterRegistry
	store    port.CampaignStore
	limits   limitsRunner
	auditor  port.Auditor
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewPolicyMiddleware(
	policies port.PolicyProvider,
	adapters port.AdapterRegistry,
	store port.CampaignStore,
	runner limitsRunner,
	auditor port.Auditor,
	timeout time.Duration,
	logger *slog.Logger,
) *PolicyMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	if auditor == nil {
		auditor = discardAuditor{}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PolicyMiddleware{
		policies: policies,
		adapters: adapters,
		store:    store,
		limits:   runner,
		auditor:  auditor,
		timeout:  timeout,
		logger:   logger.With(slog.String("mod", "policy_middleware")),
		now:      time.Now,
	}
}

// ValidateBeforeSend checks a payload before it goes to channelID: internal
// fields must not leak, segmentation must fit the channel and the limits
// the channel's policy enforces must hold. With auto-actions on, a limit
// violation is remediated right away.
func (m *PolicyMiddleware) ValidateBeforeSend(ctx context.Context, channelID string, camp *domain.Campaign, payload domain.ExternalPayload, internal domain.InternalData) ValidationReport {
	p := m.policies.Get(channelID)
	report := ValidationReport{Errors: []string{}, Warnings: []string{}, Actions: []domain.Action{}}

	for _, key := range internalLeaks(payload) {
		report.Errors = append(report.Errors, fmt.Sprintf("payload carries internal field %q", key))
	}
	if internal.CampaignID != 0 && internal.CampaignID != camp.ID {
		report.Errors = append(report.Errors, fmt.Sprintf("internal data belongs to campaign %d", internal.CampaignID))
	}

	if adapter, ok := m.adapters.Adapter(channelID); !ok {
		report.Errors = append(report.Errors, "no adapter registered for channel "+channelID)
	} else if v := adapter.ValidateSegmentationRules(payload.Segmentation); !v.Valid {
		report.Errors = append(report.Errors, v.Errors...)
	}

	limitViolated := false
	if p.PreValidation {
		res := m.limits.EvaluateAll(ctx, camp)
		for _, check := range []domain.LimitCheckResult{res.BudgetCheck, res.DateCheck, res.CPCCheck} {
			if !p.Enforces(check.Type) {
				continue
			}
			for _, a := range check.Actions {
				msg := fmt.Sprintf("%s limit: %s", check.Type, a.Reason)
				if p.AllowOverrides {
					report.Warnings = append(report.Warnings, msg+" (overridden)")
					continue
				}
				report.Errors = append(report.Errors, msg)
				limitViolated = true
			}
			for _, al := range check.Alerts {
				report.Warnings = append(report.Warnings, al.Message)
			}
			if check.Error != "" {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s check incomplete: %s", check.Type, check.Error))
			}
		}
	}

	report.Valid = len(report.Errors) == 0
	if report.Valid || !limitViolated || !p.AutoActions {
		return report
	}

	res, err := m.limits.CheckCampaignLimits(ctx, camp.ID)
	if err != nil {
		report.Actions = append(report.Actions, domain.Action{Type: domain.ActionError, Reason: err.Error()})
		return report
	}
	for _, o := range res.Outcomes {
		if o.Error != "" {
			report.Actions = append(report.Actions, domain.Action{
				Type:   domain.ActionError,
				Reason: o.Error,
				Data:   map[string]any{"action": o.Action.Type, "reason": o.Action.Reason},
			})
			continue
		}
		if o.Applied {
			report.Actions = append(report.Actions, o.Action)
		}
	}
	return report
}

// MonitorAfterSend reconciles the channel's answer with internal state and
// re-runs the full limit check for the campaign.
func (m *PolicyMiddleware) MonitorAfterSend(ctx context.Context, channelID string, campaignID int64, resp domain.ChannelResponse) (MonitorReport, error) {
	report := MonitorReport{Alerts: []domain.Alert{}, Actions: []domain.Action{}, Outcomes: []domain.ActionOutcome{}}
	p := m.policies.Get(channelID)
	if !p.PostValidation {
		return report, nil
	}

	camp, err := m.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return report, fmt.Errorf("load campaign %d: %w", campaignID, err)
	}
	if camp == nil {
		return report, fmt.Errorf("campaign %d: %w", campaignID, port.ErrCampaignNotFound)
	}

	alloc, _ := camp.Allocation(channelID)
	ccid := alloc.ChannelCampaignID
	if ccid == "" && resp.ChannelCampaignID != "" {
		ccid = resp.ChannelCampaignID
		if err := m.store.SetChannelCampaignID(ctx, campaignID, channelID, ccid); err != nil {
			m.logger.Warn("link channel campaign", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		}
	}

	if strings.EqualFold(resp.Status, "active") && camp.Status != domain.StatusActive {
		report.Alerts = append(report.Alerts, domain.Alert{
			Kind:    domain.AlertStateDrift,
			Level:   domain.LevelCritical,
			Message: fmt.Sprintf("channel %s reports active for a %s campaign", channelID, camp.Status),
		})
		if p.AutoActions && ccid != "" {
			action := domain.Action{
				Type:   domain.ActionPauseCampaign,
				Reason: domain.ReasonChannelStateDrift,
				Data:   map[string]any{"channel": channelID, "reported": resp.Status, "internal": string(camp.Status)},
			}
			report.Actions = append(report.Actions, action)
			report.Outcomes = append(report.Outcomes, m.pauseDrifted(ctx, campaignID, channelID, ccid, action))
		}
	}

	res, err := m.limits.CheckCampaignLimits(ctx, campaignID)
	if err != nil {
		report.Actions = append(report.Actions, domain.Action{Type: domain.ActionError, Reason: err.Error()})
	} else {
		report.Alerts = append(report.Alerts, res.Alerts()...)
		report.Actions = append(report.Actions, res.Actions...)
		report.Outcomes = append(report.Outcomes, res.Outcomes...)
	}

	m.auditor.Record(domain.AuditRecord{
		CampaignID: campaignID,
		ChannelID:  channelID,
		Event:      "post_dispatch",
		Alerts:     report.Alerts,
		Actions:    report.Actions,
		Details: map[string]any{
			"response": resp,
			"outcomes": report.Outcomes,
		},
		CreatedAt: m.now().UTC(),
	})
	return report, nil
}

func (m *PolicyMiddleware) pauseDrifted(ctx context.Context, campaignID int64, channelID, ccid string, action domain.Action) domain.ActionOutcome {
	adapter, ok := m.adapters.Adapter(channelID)
	if !ok {
		return domain.ActionOutcome{Action: action, Error: "no adapter registered for channel " + channelID}
	}
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := adapter.PauseCampaign(callCtx, ccid)
	cancel()
	if err != nil {
		return domain.ActionOutcome{Action: action, Error: err.Error()}
	}
	if err := m.store.UpdateAllocationStatus(ctx, campaignID, channelID, domain.StatusPaused); err != nil {
		return domain.ActionOutcome{Action: action, Applied: true, Error: "store allocation status: " + err.Error()}
	}
	return domain.ActionOutcome{Action: action, Applied: true, Detail: "channel paused to match internal status"}
}

// internalConfigKeys are the JSON names of every InternalConfig field.
var internalConfigKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	t := reflect.TypeOf(domain.InternalConfig{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
}()

// internalLeaks returns the internal config keys present anywhere in the
// serialized payload, sorted.
func internalLeaks(payload domain.ExternalPayload) []string {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	found := make(map[string]struct{})
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case map[string]any:
			for k, child := range t {
				if _, ok := internalConfigKeys[k]; ok {
					found[k] = struct{}{}
				}
				walk(child)
			}
		case []any:
			for _, child := range t {
				walk(child)
			}
		}
	}
	walk(doc)

	out := make([]string, 0, len(found))
	for k := range found {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
