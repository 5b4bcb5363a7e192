package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobcast/internal/core/domain"
	"jobcast/internal/core/port"
)

// DispatchResult describes one campaign sent to one channel.
type DispatchResult struct {
	CampaignID int64                  `json:"campaignId"`
	ChannelID  string                 `json:"channelId"`
	Payload    domain.ExternalPayload `json:"payload"`
	Validation ValidationReport       `json:"validation"`
	Response   domain.ChannelResponse `json:"response"`
	Monitor    MonitorReport          `json:"monitor"`
	Created    bool                   `json:"created"`
}

// Dispatcher builds, validates, sends and monitors a campaign dispatch.
type Dispatcher struct {
	store      port.CampaignStore
	adapters   port.AdapterRegistry
	middleware *PolicyMiddleware
	auditor    port.Auditor
	timeout    time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewDispatcher(store port.CampaignStore, adapters port.AdapterRegistry, middleware *PolicyMiddleware, auditor port.Auditor, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if auditor == nil {
		auditor = discardAuditor{}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		store:      store,
		adapters:   adapters,
		middleware: middleware,
		auditor:    auditor,
		timeout:    timeout,
		logger:     logger.With(slog.String("mod", "dispatcher")),
		now:        time.Now,
	}
}

// Dispatch creates the campaign on the channel, or edits it when the
// allocation is already linked to a channel campaign. A payload rejected by
// validation is not sent and the error is a *domain.ValidationError.
func (d *Dispatcher) Dispatch(ctx context.Context, campaignID int64, channelID string, offers []domain.Offer) (*DispatchResult, error) {
	camp, err := d.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign %d: %w", campaignID, err)
	}
	if camp == nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, port.ErrCampaignNotFound)
	}
	adapter, ok := d.adapters.Adapter(channelID)
	if !ok {
		return nil, &domain.ValidationError{ChannelID: channelID, Problems: []string{"no adapter registered"}}
	}

	alloc, _ := camp.Allocation(channelID)
	budget := domain.BudgetInfo{
		TotalBudget: alloc.AllocatedBudget,
		DailyBudget: camp.InternalConfig.DailyBudget,
		ClickPrice:  alloc.BidAmount,
	}

	payload, err := adapter.BuildPayload(*camp, offers, budget)
	if err != nil {
		return nil, err
	}
	internal := adapter.BuildInternalData(*camp, offers, budget)

	res := &DispatchResult{CampaignID: campaignID, ChannelID: channelID, Payload: payload}
	res.Validation = d.middleware.ValidateBeforeSend(ctx, channelID, camp, payload, internal)
	if !res.Validation.Valid {
		d.record(campaignID, channelID, "dispatch_rejected", internal, res)
		return res, &domain.ValidationError{ChannelID: channelID, Problems: res.Validation.Errors}
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	if alloc.ChannelCampaignID == "" {
		res.Response, err = adapter.CreateCampaign(callCtx, payload)
		res.Created = true
	} else {
		res.Response, err = adapter.EditCampaign(callCtx, alloc.ChannelCampaignID, payload)
	}
	cancel()
	if err != nil {
		d.record(campaignID, channelID, "dispatch_failed", internal, res)
		return res, fmt.Errorf("send campaign %d to %s: %w", campaignID, channelID, err)
	}

	if res.Created && res.Response.ChannelCampaignID != "" {
		if err := d.store.SetChannelCampaignID(ctx, campaignID, channelID, res.Response.ChannelCampaignID); err != nil {
			d.logger.Error("link channel campaign",
				slog.Int64("campaign_id", campaignID),
				slog.String("channel", channelID),
				slog.Any("error", err),
			)
		}
	}

	res.Monitor, err = d.middleware.MonitorAfterSend(ctx, channelID, campaignID, res.Response)
	if err != nil {
		d.logger.Warn("post dispatch monitoring", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
	}

	d.record(campaignID, channelID, "dispatch", internal, res)
	d.logger.Info("campaign dispatched",
		slog.Int64("campaign_id", campaignID),
		slog.String("channel", channelID),
		slog.String("channel_campaign_id", res.Response.ChannelCampaignID),
		slog.Bool("created", res.Created),
	)
	return res, nil
}

func (d *Dispatcher) record(campaignID int64, channelID, event string, internal domain.InternalData, res *DispatchResult) {
	d.auditor.Record(domain.AuditRecord{
		CampaignID: campaignID,
		ChannelID:  channelID,
		Event:      event,
		Details: map[string]any{
			"internal":   internal,
			"validation": res.Validation,
			"response":   res.Response,
		},
		CreatedAt: d.now().UTC(),
	})
}
