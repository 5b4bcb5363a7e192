package jooble

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"jobcast/internal/core/domain"
)

// Structural limits Jooble imposes on a campaign's targeting.
const (
	MaxTitles     = 5
	MaxCompanies  = 3
	MaxRegions    = 10
	MaxTitleRegex = 2
)

type ruleLimit struct {
	typ domain.RuleType
	max int
	op  domain.Operator
	// key extracts the rule value from an offer; nil for rule types that are
	// not derived from offers.
	key func(domain.Offer) string
}

var ruleLimits = []ruleLimit{
	{typ: domain.RuleTitle, max: MaxTitles, op: domain.OpContains, key: func(o domain.Offer) string { return o.Title }},
	{typ: domain.RuleCompany, max: MaxCompanies, op: domain.OpEquals, key: func(o domain.Offer) string { return o.Company }},
	{typ: domain.RuleRegion, max: MaxRegions, op: domain.OpIn, key: func(o domain.Offer) string { return o.Region }},
	{typ: domain.RuleTitleRegex, max: MaxTitleRegex, op: domain.OpRegex},
}

func limitFor(t domain.RuleType) (ruleLimit, bool) {
	for _, l := range ruleLimits {
		if l.typ == t {
			return l, true
		}
	}
	return ruleLimit{}, false
}

// valueGroup is one distinct targeting value with the offers carrying it.
type valueGroup struct {
	value    string
	offerIDs []string
}

// groupOffers deduplicates key(offer) case-insensitively. Groups keep the
// order in which values first appear, so truncation is deterministic.
func groupOffers(offers []domain.Offer, key func(domain.Offer) string) []valueGroup {
	idx := make(map[string]int)
	var groups []valueGroup
	for _, o := range offers {
		v := strings.TrimSpace(key(o))
		if v == "" {
			continue
		}
		norm := strings.ToLower(v)
		i, ok := idx[norm]
		if !ok {
			i = len(groups)
			idx[norm] = i
			groups = append(groups, valueGroup{value: v})
		}
		if o.ID != "" {
			groups[i].offerIDs = append(groups[i].offerIDs, o.ID)
		}
	}
	return groups
}

// BuildSegmentationRules derives title, company and region rules from the
// offers. Every rule type is cut to Jooble's maximum keeping the first
// values; the number dropped is logged.
func (a *Adapter) BuildSegmentationRules(offers []domain.Offer) []domain.SegmentationRule {
	var rules []domain.SegmentationRule
	for _, l := range ruleLimits {
		if l.key == nil {
			continue
		}
		groups := groupOffers(offers, l.key)
		if len(groups) > l.max {
			a.logger.Warn("segmentation rules truncated",
				slog.String("type", string(l.typ)),
				slog.Int("kept", l.max),
				slog.Int("dropped", len(groups)-l.max),
			)
			groups = groups[:l.max]
		}
		for _, g := range groups {
			rules = append(rules, domain.SegmentationRule{Type: l.typ, Value: g.value, Operator: l.op})
		}
	}
	return rules
}

// ValidateSegmentationRules checks counts, operators and values. It never
// fails hard; the caller decides what to do with the errors.
func (a *Adapter) ValidateSegmentationRules(rules []domain.SegmentationRule) domain.RuleValidation {
	errs := make([]string, 0)
	counts := make(map[domain.RuleType]int)

	for i, r := range rules {
		l, ok := limitFor(r.Type)
		if !ok {
			errs = append(errs, fmt.Sprintf("rule %d: unsupported type %q", i, r.Type))
			continue
		}
		counts[r.Type]++
		if r.Operator != l.op {
			errs = append(errs, fmt.Sprintf("rule %d: %s requires operator %s, got %q", i, r.Type, l.op, r.Operator))
		}
		if strings.TrimSpace(r.Value) == "" {
			errs = append(errs, fmt.Sprintf("rule %d: empty %s value", i, r.Type))
			continue
		}
		if r.Type == domain.RuleTitleRegex {
			if _, err := regexp.Compile(r.Value); err != nil {
				errs = append(errs, fmt.Sprintf("rule %d: invalid regex: %v", i, err))
			}
		}
	}

	for _, l := range ruleLimits {
		if n := counts[l.typ]; n > l.max {
			errs = append(errs, fmt.Sprintf("too many %s rules: %d > %d", l.typ, n, l.max))
		}
	}

	return domain.RuleValidation{Valid: len(errs) == 0, Errors: errs}
}

// internalRules is the audit mirror of the segmentation: every distinct
// value with its offers, flagged with whether it was sent.
func internalRules(offers []domain.Offer) []domain.InternalRule {
	var out []domain.InternalRule
	for _, l := range ruleLimits {
		if l.key == nil {
			continue
		}
		for i, g := range groupOffers(offers, l.key) {
			out = append(out, domain.InternalRule{
				SegmentationRule: domain.SegmentationRule{Type: l.typ, Value: g.value, Operator: l.op},
				OfferCount:       len(g.offerIDs),
				OfferIDs:         g.offerIDs,
				Sent:             i < l.max,
			})
		}
	}
	return out
}
