// Package jooble implements the channel adapter for the Jooble CPC network.
package jooble

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"jobcast/internal/core/domain"
)

const (
	ChannelID = "jooble"

	// assumedDays is the campaign length used to turn a daily budget into a
	// total when the campaign has no end date.
	assumedDays = 30
)

// statusMap folds the five internal states onto Jooble's three.
var statusMap = map[domain.Status]string{
	domain.StatusActive:   "active",
	domain.StatusPaused:   "paused",
	domain.StatusStopped:  "paused",
	domain.StatusDeleted:  "archived",
	domain.StatusArchived: "archived",
}

// MapStatus returns the Jooble status for s.
func MapStatus(s domain.Status) (string, bool) {
	v, ok := statusMap[s]
	return v, ok
}

// Adapter translates campaigns to Jooble payloads and drives the Jooble API.
type Adapter struct {
	client *Client
	logger *slog.Logger
	now    func() time.Time
}

func NewAdapter(client *Client, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		client: client,
		logger: logger.With(slog.String("mod", "jooble")),
		now:    time.Now,
	}
}

func (a *Adapter) ChannelID() string { return ChannelID }

// BuildPayload builds the payload Jooble accepts. Nothing from the internal
// config is copied verbatim; the budget is derived from it when needed.
func (a *Adapter) BuildPayload(c domain.Campaign, offers []domain.Offer, budget domain.BudgetInfo) (domain.ExternalPayload, error) {
	var problems []string
	name := strings.TrimSpace(c.Name)
	if name == "" {
		problems = append(problems, "campaign name is empty")
	}
	status, ok := MapStatus(c.Status)
	if !ok {
		problems = append(problems, "unknown campaign status "+string(c.Status))
	}
	if budget.ClickPrice < 0 {
		problems = append(problems, "negative click price")
	}
	if len(problems) > 0 {
		return domain.ExternalPayload{}, &domain.ValidationError{ChannelID: ChannelID, Problems: problems}
	}

	return domain.ExternalPayload{
		Name:         name,
		Status:       status,
		ClickPrice:   decimal.NewFromFloat(budget.ClickPrice).Round(2),
		Budget:       decimal.NewFromFloat(totalBudget(c.InternalConfig, budget)).Round(2),
		UTM:          utmQuery(name),
		SiteURL:      c.SiteURL,
		Segmentation: a.BuildSegmentationRules(offers),
	}, nil
}

// BuildInternalData returns the full internal mirror of a dispatch. It is
// stored for audit and never sent to Jooble.
func (a *Adapter) BuildInternalData(c domain.Campaign, offers []domain.Offer, _ domain.BudgetInfo) domain.InternalData {
	campaign := normalizeName(c.Name)
	return domain.InternalData{
		CampaignID:   c.ID,
		ChannelID:    ChannelID,
		Config:       c.InternalConfig,
		Targeting:    targeting(offers),
		Segmentation: internalRules(offers),
		Tracking: domain.Tracking{
			UTMSource:   ChannelID,
			UTMMedium:   "cpc",
			UTMCampaign: campaign,
			QueryString: utmQuery(c.Name),
		},
		BuiltAt: a.now().UTC(),
	}
}

// totalBudget is the explicit budget when set, otherwise the daily budget
// times the campaign length in days.
func totalBudget(cfg domain.InternalConfig, b domain.BudgetInfo) float64 {
	if b.TotalBudget > 0 {
		return b.TotalBudget
	}
	daily := b.DailyBudget
	if daily <= 0 {
		daily = cfg.DailyBudget
	}
	if daily <= 0 {
		return 0
	}
	return daily * float64(campaignDays(cfg))
}

func campaignDays(cfg domain.InternalConfig) int {
	if cfg.StartDate == nil || cfg.EndDate == nil || !cfg.EndDate.After(*cfg.StartDate) {
		return assumedDays
	}
	days := int(math.Ceil(cfg.EndDate.Sub(*cfg.StartDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func utmQuery(name string) string {
	return "?utm_source=" + ChannelID + "&utm_medium=cpc&utm_campaign=" + url.QueryEscape(normalizeName(name))
}

// normalizeName lowercases name and collapses every run of characters that
// are not letters or digits into a single dash.
func normalizeName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func targeting(offers []domain.Offer) domain.Targeting {
	values := func(key func(domain.Offer) string) []string {
		groups := groupOffers(offers, key)
		out := make([]string, len(groups))
		for i, g := range groups {
			out[i] = g.value
		}
		return out
	}
	ids := make([]string, 0, len(offers))
	seen := make(map[string]struct{}, len(offers))
	for _, o := range offers {
		if _, dup := seen[o.ID]; o.ID == "" || dup {
			continue
		}
		seen[o.ID] = struct{}{}
		ids = append(ids, o.ID)
	}
	return domain.Targeting{
		Titles:    values(func(o domain.Offer) string { return o.Title }),
		Companies: values(func(o domain.Offer) string { return o.Company }),
		Regions:   values(func(o domain.Offer) string { return o.Region }),
		OfferIDs:  ids,
	}
}

func (a *Adapter) CreateCampaign(ctx context.Context, payload domain.ExternalPayload) (domain.ChannelResponse, error) {
	return a.client.CreateCampaign(ctx, payload)
}

func (a *Adapter) EditCampaign(ctx context.Context, channelCampaignID string, payload domain.ExternalPayload) (domain.ChannelResponse, error) {
	return a.client.EditCampaign(ctx, channelCampaignID, payload)
}

func (a *Adapter) PauseCampaign(ctx context.Context, channelCampaignID string) error {
	return a.client.SetStatus(ctx, channelCampaignID, "paused")
}

func (a *Adapter) ResumeCampaign(ctx context.Context, channelCampaignID string) error {
	return a.client.SetStatus(ctx, channelCampaignID, "active")
}

func (a *Adapter) DeleteCampaign(ctx context.Context, channelCampaignID string) error {
	return a.client.DeleteCampaign(ctx, channelCampaignID)
}

func (a *Adapter) UpdateBid(ctx context.Context, channelCampaignID string, bid float64) error {
	return a.client.UpdateBid(ctx, channelCampaignID, decimal.NewFromFloat(bid).Round(2))
}

func (a *Adapter) GetStatistics(ctx context.Context, channelCampaignID string, from, to time.Time) (domain.ChannelStats, error) {
	return a.client.Statistics(ctx, channelCampaignID, from, to)
}
