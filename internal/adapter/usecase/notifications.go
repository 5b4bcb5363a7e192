package usecase

import (
	"context"

	"github.com/google/uuid"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// alertNotification maps an alert onto the notification taxonomy.
func alertNotification(a domain.Alert) (domain.NotificationType, bool) {
	switch a.Kind {
	case domain.AlertBudget, domain.AlertDailyBudget:
		if a.Level == domain.LevelCritical {
			return domain.NotifyBudgetCritical, true
		}
		return domain.NotifyBudgetWarning, true
	case domain.AlertTime:
		return domain.NotifyCampaignEnding, true
	case domain.AlertCPC, domain.AlertCPCTrend:
		return domain.NotifyCPCExceeded, true
	}
	return "", false
}

// notifyCheck sends one notification per alert and one per CPA overshoot.
// Pauses and bid reductions notify from where they are applied.
func (c *LimitsController) notifyCheck(ctx context.Context, camp *domain.Campaign, res *port.CheckResult) {
	for _, a := range res.Alerts() {
		typ, ok := alertNotification(a)
		if !ok {
			continue
		}
		c.notify(ctx, camp, typ, map[string]any{
			"kind":      a.Kind,
			"level":     a.Level,
			"message":   a.Message,
			"value":     a.Value,
			"threshold": a.Threshold,
		})
	}
	for _, a := range res.CPCCheck.Actions {
		if a.Reason == domain.ReasonCPCExceeded {
			c.notify(ctx, camp, domain.NotifyCPCExceeded, a.Data)
		}
	}
}

func (c *LimitsController) notify(ctx context.Context, camp *domain.Campaign, typ domain.NotificationType, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	c.notifier.Send(ctx, domain.Notification{
		ID:         uuid.NewString(),
		Type:       typ,
		UserID:     camp.UserID,
		CampaignID: camp.ID,
		Data:       data,
		CreatedAt:  c.now().UTC(),
	})
	c.metrics.Notifications.WithLabelValues(string(typ), "sent").Inc()
}
