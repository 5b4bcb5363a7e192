package limits

import (
	"fmt"
	"time"

	"jobcast/internal/core/domain"
)

const (
	TimeWarningRatio  = 0.90
	TimeCriticalRatio = 0.98
)

// EvaluateDates checks now against the campaign's start/end window. Time
// progress alerts are advisory and never carry an action.
func EvaluateDates(start, end *time.Time, now time.Time) domain.LimitCheckResult {
	res := domain.NewLimitCheckResult(domain.LimitDate)

	if start != nil && now.Before(*start) {
		res.AddAction(domain.Action{
			Type:   domain.ActionPauseCampaign,
			Reason: domain.ReasonNotStartedYet,
			Data:   map[string]any{"startDate": start.UTC().Format(time.RFC3339)},
		})
		return res
	}
	if end != nil && now.After(*end) {
		res.AddAction(domain.Action{
			Type:   domain.ActionPauseCampaign,
			Reason: domain.ReasonCampaignEnded,
			Data:   map[string]any{"endDate": end.UTC().Format(time.RFC3339)},
		})
		return res
	}

	if start == nil || end == nil {
		return res
	}
	total := end.Sub(*start)
	if total <= 0 {
		return res
	}
	progress := float64(now.Sub(*start)) / float64(total)
	remaining := end.Sub(now).Round(time.Hour)

	switch {
	case progress >= TimeCriticalRatio:
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      domain.AlertTime,
			Level:     domain.LevelCritical,
			Message:   fmt.Sprintf("campaign ends in %s", remaining),
			Value:     progress,
			Threshold: TimeCriticalRatio,
		})
	case progress >= TimeWarningRatio:
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      domain.AlertTime,
			Level:     domain.LevelWarning,
			Message:   fmt.Sprintf("campaign ends in %s", remaining),
			Value:     progress,
			Threshold: TimeWarningRatio,
		})
	}
	return res
}
