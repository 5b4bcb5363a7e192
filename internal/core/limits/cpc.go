package limits

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"jobcast/internal/core/domain"
)

const (
	CPCWarningRatio = 0.90
	CPCTrendRatio   = 1.20
	// BidSafetyMargin keeps a reduced bid below the cap.
	BidSafetyMargin = 0.95
)

// ChannelBid is the per-channel view used by the CPC check.
type ChannelBid struct {
	ChannelID string
	Bid       float64
	// CPA is the channel's realized cost per application, zero if unknown.
	CPA float64
}

// CPCSnapshot is the state the CPC check needs. Window figures are summed
// over the active allocations.
type CPCSnapshot struct {
	MaxCPC          float64
	Spend7d         float64
	Applications7d  int64
	Spend24h        float64
	Applications24h int64
	Bids            []ChannelBid
}

// CPA7d is the seven day cost per application, zero without applications.
func (s CPCSnapshot) CPA7d() float64 {
	return cpa(s.Spend7d, s.Applications7d)
}

// CPA24h is the last day cost per application, zero without applications.
func (s CPCSnapshot) CPA24h() float64 {
	return cpa(s.Spend24h, s.Applications24h)
}

func cpa(spend float64, applications int64) float64 {
	if applications <= 0 {
		return 0
	}
	return spend / float64(applications)
}

// EvaluateCPC checks realized CPA and per-channel bids against maxCPC. At
// most one reduce_bids action is produced; it lists every offending channel.
func EvaluateCPC(s CPCSnapshot) domain.LimitCheckResult {
	res := domain.NewLimitCheckResult(domain.LimitCPC)
	if s.MaxCPC <= 0 {
		return res
	}

	current := s.CPA7d()
	var reason string
	switch {
	case current > s.MaxCPC:
		reason = domain.ReasonCPCExceeded
	case current > s.MaxCPC*CPCWarningRatio:
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      domain.AlertCPC,
			Level:     domain.LevelWarning,
			Message:   fmt.Sprintf("CPA %.2f is close to max %.2f", current, s.MaxCPC),
			Value:     current,
			Threshold: s.MaxCPC * CPCWarningRatio,
		})
	}

	if recent := s.CPA24h(); current > 0 && recent > current*CPCTrendRatio {
		res.Alerts = append(res.Alerts, domain.Alert{
			Kind:      domain.AlertCPCTrend,
			Level:     domain.LevelWarning,
			Message:   fmt.Sprintf("24h CPA %.2f is rising against 7d CPA %.2f", recent, current),
			Value:     recent / current,
			Threshold: CPCTrendRatio,
		})
	}

	over := make([]string, 0)
	for _, b := range s.Bids {
		if b.Bid > s.MaxCPC {
			over = append(over, b.ChannelID)
		}
	}
	sort.Strings(over)
	if reason == "" && len(over) > 0 {
		reason = domain.ReasonBidAboveMaxCPC
	}
	if reason == "" {
		return res
	}

	data := map[string]any{
		"currentCPA": current,
		"maxCPC":     s.MaxCPC,
		"excess":     max(current-s.MaxCPC, 0),
	}
	if len(over) > 0 {
		data["channelsOverMax"] = over
	}
	if perChannel := channelCPAs(s.Bids); len(perChannel) > 0 {
		data[ChannelCPAKey] = perChannel
	}
	res.AddAction(domain.Action{Type: domain.ActionReduceBids, Reason: reason, Data: data})
	return res
}

// ChannelCPAKey is the reduce_bids data entry holding the CPA each
// channel was judged on, as map[string]float64.
const ChannelCPAKey = "channelCPA"

func channelCPAs(bids []ChannelBid) map[string]float64 {
	out := make(map[string]float64)
	for _, b := range bids {
		if b.CPA > 0 {
			out[b.ChannelID] = b.CPA
		}
	}
	return out
}

// TargetBid is the canonical bid-reduction formula. The bid is scaled down
// by the CPA overshoot and capped at maxCPC times BidSafetyMargin; it is
// never raised. An unknown bid is set to the cap. The result is truncated
// to whole cents, the precision channels accept.
func TargetBid(bid, cpa, maxCPC float64) float64 {
	ceiling := maxCPC * BidSafetyMargin
	if bid <= 0 {
		return toCents(ceiling)
	}
	scaled := bid
	if cpa > maxCPC {
		scaled = bid * maxCPC / cpa
	}
	return toCents(min(ceiling, scaled, bid))
}

func toCents(v float64) float64 {
	return decimal.NewFromFloat(v).Truncate(2).InexactFloat64()
}

// NeedsReduction reports whether a channel violates the cap either through
// its bid or through its realized CPA.
func NeedsReduction(b ChannelBid, maxCPC float64) bool {
	return b.Bid > maxCPC || b.CPA > maxCPC
}
