package jooble

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobcast/internal/core/domain"
)

func newTestAdapter() *Adapter {
	return NewAdapter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func offersWithTitles(titles ...string) []domain.Offer {
	out := make([]domain.Offer, len(titles))
	for i, t := range titles {
		out[i] = domain.Offer{ID: t + "-id", Title: t, Company: "Acme", Region: "Paris"}
	}
	return out
}

func TestBuildSegmentationRulesLogsDroppedRules(t *testing.T) {
	var buf bytes.Buffer
	a := NewAdapter(nil, slog.New(slog.NewTextHandler(&buf, nil)))
	offers := offersWithTitles("Go dev", "Rust dev", "Ops", "QA", "PM", "SRE", "DBA", "ML")

	rules := a.BuildSegmentationRules(offers)

	var titles int
	for _, r := range rules {
		if r.Type == domain.RuleTitle {
			titles++
		}
	}
	assert.Equal(t, 5, titles)
	out := buf.String()
	assert.Contains(t, out, "segmentation rules truncated")
	assert.Contains(t, out, "type=title")
	assert.Contains(t, out, "kept=5")
	assert.Contains(t, out, "dropped=3")
}

func TestBuildSegmentationRulesTruncatesTitles(t *testing.T) {
	a := newTestAdapter()
	offers := offersWithTitles("Go dev", "Rust dev", "go dev", "Ops", "QA", "PM", "SRE", "DBA")

	rules := a.BuildSegmentationRules(offers)

	var titles []string
	for _, r := range rules {
		if r.Type == domain.RuleTitle {
			assert.Equal(t, domain.OpContains, r.Operator)
			titles = append(titles, r.Value)
		}
	}
	// "go dev" is a duplicate of "Go dev"; the first five distinct remain.
	assert.Equal(t, []string{"Go dev", "Rust dev", "Ops", "QA", "PM"}, titles)
	assert.Contains(t, rules, domain.SegmentationRule{Type: domain.RuleCompany, Value: "Acme", Operator: domain.OpEquals})
	assert.Contains(t, rules, domain.SegmentationRule{Type: domain.RuleRegion, Value: "Paris", Operator: domain.OpIn})
	assert.True(t, a.ValidateSegmentationRules(rules).Valid)
}

func TestBuildSegmentationRulesCompanyLimit(t *testing.T) {
	a := newTestAdapter()
	var offers []domain.Offer
	for _, c := range []string{"A", "B", "C", "D", "E"} {
		offers = append(offers, domain.Offer{ID: c, Title: "Dev", Company: c})
	}

	rules := a.BuildSegmentationRules(offers)

	n := 0
	for _, r := range rules {
		if r.Type == domain.RuleCompany {
			n++
		}
	}
	assert.Equal(t, MaxCompanies, n)
}

func TestValidateSegmentationRules(t *testing.T) {
	a := newTestAdapter()

	tests := []struct {
		name   string
		rules  []domain.SegmentationRule
		valid  bool
		errSub string
	}{
		{
			name:  "ok",
			rules: []domain.SegmentationRule{{Type: domain.RuleTitle, Value: "Go", Operator: domain.OpContains}},
			valid: true,
		},
		{
			name:   "wrong operator",
			rules:  []domain.SegmentationRule{{Type: domain.RuleCompany, Value: "Acme", Operator: domain.OpContains}},
			errSub: "requires operator equals",
		},
		{
			name: "too many regex",
			rules: []domain.SegmentationRule{
				{Type: domain.RuleTitleRegex, Value: "^go", Operator: domain.OpRegex},
				{Type: domain.RuleTitleRegex, Value: "^rust", Operator: domain.OpRegex},
				{Type: domain.RuleTitleRegex, Value: "^qa", Operator: domain.OpRegex},
			},
			errSub: "too many titleRegex rules: 3 > 2",
		},
		{
			name:   "bad regex",
			rules:  []domain.SegmentationRule{{Type: domain.RuleTitleRegex, Value: "(", Operator: domain.OpRegex}},
			errSub: "invalid regex",
		},
		{
			name:   "unknown type",
			rules:  []domain.SegmentationRule{{Type: "salary", Value: "1", Operator: domain.OpEquals}},
			errSub: "unsupported type",
		},
		{
			name:   "empty value",
			rules:  []domain.SegmentationRule{{Type: domain.RuleRegion, Value: " ", Operator: domain.OpIn}},
			errSub: "empty region value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.ValidateSegmentationRules(tt.rules)

			assert.Equal(t, tt.valid, res.Valid)
			if tt.errSub != "" {
				require.NotEmpty(t, res.Errors)
				assert.Contains(t, strings.Join(res.Errors, "\n"), tt.errSub)
			}
		})
	}
}

func TestMapStatus(t *testing.T) {
	want := map[domain.Status]string{
		domain.StatusActive:   "active",
		domain.StatusPaused:   "paused",
		domain.StatusStopped:  "paused",
		domain.StatusDeleted:  "archived",
		domain.StatusArchived: "archived",
	}
	for in, out := range want {
		got, ok := MapStatus(in)
		assert.True(t, ok)
		assert.Equal(t, out, got, in)
	}

	_, ok := MapStatus("draft")
	assert.False(t, ok)
}

func TestBuildPayload(t *testing.T) {
	a := newTestAdapter()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	c := domain.Campaign{
		ID:      7,
		Name:    "Senior Go Engineers — Paris!",
		Status:  domain.StatusStopped,
		SiteURL: "https://jobs.example.com",
		InternalConfig: domain.InternalConfig{
			MaxCPC:      1.5,
			DailyBudget: 20,
			StartDate:   &start,
			EndDate:     &end,
		}.WithDefaults(),
	}

	p, err := a.BuildPayload(c, offersWithTitles("Go dev"), domain.BudgetInfo{ClickPrice: 0.456})
	require.NoError(t, err)

	assert.Equal(t, "paused", p.Status)
	assert.Equal(t, "0.46", p.ClickPrice.StringFixed(2))
	assert.Equal(t, "200.00", p.Budget.StringFixed(2))
	assert.Equal(t, "?utm_source=jooble&utm_medium=cpc&utm_campaign=senior-go-engineers-paris", p.UTM)
	assert.Equal(t, "https://jobs.example.com", p.SiteURL)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	for _, key := range []string{"maxCPC", "dailyBudget", "startDate", "endDate", "timezone", "bidStrategy"} {
		assert.NotContains(t, string(raw), `"`+key+`"`)
	}
}

func TestBuildPayloadBudget(t *testing.T) {
	a := newTestAdapter()
	c := domain.Campaign{Name: "x", Status: domain.StatusActive, InternalConfig: domain.InternalConfig{DailyBudget: 10}.WithDefaults()}

	open, err := a.BuildPayload(c, nil, domain.BudgetInfo{})
	require.NoError(t, err)
	assert.Equal(t, "300.00", open.Budget.StringFixed(2))

	explicit, err := a.BuildPayload(c, nil, domain.BudgetInfo{TotalBudget: 125.5})
	require.NoError(t, err)
	assert.Equal(t, "125.50", explicit.Budget.StringFixed(2))
}

func TestBuildPayloadRejectsInvalidCampaign(t *testing.T) {
	a := newTestAdapter()

	_, err := a.BuildPayload(domain.Campaign{Status: "draft"}, nil, domain.BudgetInfo{})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Problems, 2)
}

func TestInternalDataRoundTrip(t *testing.T) {
	a := newTestAdapter()
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 5, 18, 30, 0, 0, time.UTC)
	c := domain.Campaign{
		ID:     42,
		Name:   "Data Team",
		Status: domain.StatusActive,
		InternalConfig: domain.InternalConfig{
			MaxCPC:      2.35,
			DailyBudget: 48.5,
			StartDate:   &start,
			EndDate:     &end,
			Timezone:    "Europe/Paris",
		}.WithDefaults(),
	}
	offers := offersWithTitles("A", "B", "C", "D", "E", "F")

	data := a.BuildInternalData(c, offers, domain.BudgetInfo{})
	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var back domain.InternalData
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, 2.35, back.Config.MaxCPC)
	assert.Equal(t, 48.5, back.Config.DailyBudget)
	require.NotNil(t, back.Config.StartDate)
	require.NotNil(t, back.Config.EndDate)
	assert.True(t, start.Equal(*back.Config.StartDate))
	assert.True(t, end.Equal(*back.Config.EndDate))

	// The mirror keeps all six titles and flags the one that was not sent.
	var sent, unsent int
	for _, r := range back.Segmentation {
		if r.Type != domain.RuleTitle {
			continue
		}
		if r.Sent {
			sent++
		} else {
			unsent++
		}
	}
	assert.Equal(t, 5, sent)
	assert.Equal(t, 1, unsent)
	assert.Equal(t, "data-team", back.Tracking.UTMCampaign)
	assert.Len(t, back.Targeting.OfferIDs, 6)
}
