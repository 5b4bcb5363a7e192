package domain

// Offer is a job offer already filtered for the campaign.
type Offer struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Region  string `json:"region"`
	URL     string `json:"url"`
}

// Targeting describes who should see a campaign. It is the full internal
// view; channels only receive the segmentation rules derived from it.
type Targeting struct {
	Titles    []string `json:"titles"`
	Companies []string `json:"companies"`
	Regions   []string `json:"regions"`
	OfferIDs  []string `json:"offerIds"`
}

// RuleType is the targeting dimension of a segmentation rule.
type RuleType string

const (
	RuleTitle      RuleType = "title"
	RuleCompany    RuleType = "company"
	RuleRegion     RuleType = "region"
	RuleTitleRegex RuleType = "titleRegex"
)

// Operator is how a channel matches a segmentation rule value.
type Operator string

const (
	OpContains Operator = "contains"
	OpEquals   Operator = "equals"
	OpIn       Operator = "in"
	OpRegex    Operator = "regex"
)

// SegmentationRule is a targeting constraint sent to a channel.
type SegmentationRule struct {
	Type     RuleType `json:"type"`
	Value    string   `json:"value"`
	Operator Operator `json:"operator"`
}

// InternalRule mirrors a segmentation rule with the detail kept for audit.
type InternalRule struct {
	SegmentationRule
	OfferCount int      `json:"offerCount"`
	OfferIDs   []string `json:"offerIds"`
	Sent       bool     `json:"sent"`
}

// RuleValidation is the structured result of a structural rule check.
type RuleValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
