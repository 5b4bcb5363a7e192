// Package limits holds the pure evaluation of campaign limits. Functions
// here take snapshots of campaign state and return decisions; they perform
// no I/O so the effectful side lives entirely in the use case layer.
package limits

import (
	"fmt"

	"jobcast/internal/core/domain"
)

const (
	BudgetWarningRatio  = 0.80
	BudgetCriticalRatio = 0.95
	BudgetExceededRatio = 1.0
)

// BudgetSnapshot is the spend state a budget check needs.
type BudgetSnapshot struct {
	TotalBudget  float64
	CurrentSpend float64
	DailyBudget  float64
	TodaySpend   float64
}

// EvaluateBudget checks total and daily spend against their budgets. A
// budget of zero or less means no cap for that period.
func EvaluateBudget(s BudgetSnapshot) domain.LimitCheckResult {
	res := domain.NewLimitCheckResult(domain.LimitBudget)

	if s.TotalBudget > 0 {
		usage := s.CurrentSpend / s.TotalBudget
		evaluateUsage(&res, usage, domain.AlertBudget, "total budget", domain.Action{
			Type:   domain.ActionPauseCampaign,
			Reason: domain.ReasonBudgetExceeded,
			Data: map[string]any{
				"currentSpend": s.CurrentSpend,
				"totalBudget":  s.TotalBudget,
				"usage":        usage,
			},
		})
	}

	if s.DailyBudget > 0 {
		usage := s.TodaySpend / s.DailyBudget
		evaluateUsage(&res, usage, domain.AlertDailyBudget, "daily budget", domain.Action{
			Type:   domain.ActionPauseCampaignDaily,
			Reason: domain.ReasonDailyBudgetExceeded,
			Data: map[string]any{
				"todaySpend":  s.TodaySpend,
				"dailyBudget": s.DailyBudget,
				"usage":       usage,
			},
		})
	}

	return res
}

func evaluateUsage(res *domain.LimitCheckResult, usage float64, kind, label string, exceeded domain.Action) {
	switch {
	case usage >= BudgetExceededRatio:
		res.AddAction(exceeded)
	case usage >= BudgetCriticalRatio:
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      kind,
			Level:     domain.LevelCritical,
			Message:   fmt.Sprintf("%s %.1f%% used", label, usage*100),
			Value:     usage,
			Threshold: BudgetCriticalRatio,
		})
	case usage >= BudgetWarningRatio:
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      kind,
			Level:     domain.LevelWarning,
			Message:   fmt.Sprintf("%s %.1f%% used", label, usage*100),
			Value:     usage,
			Threshold: BudgetWarningRatio,
		})
	}
}
