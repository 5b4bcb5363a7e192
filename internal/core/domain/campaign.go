package domain

import "time"

// Status is the lifecycle state of a campaign or of one of its channel
// allocations.
type Status string

const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusStopped  Status = "stopped"
	StatusDeleted  Status = "deleted"
	StatusArchived Status = "archived"
)

// Valid reports whether s is one of the five known states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusStopped, StatusDeleted, StatusArchived:
		return true
	}
	return false
}

// Campaign represents a job-ad campaign distributed across channels.
// Money amounts are expressed in the account currency.
type Campaign struct {
	ID                 int64
	UserID             int64
	Name               string
	Status             Status
	TotalBudget        float64
	TargetApplications int64
	SiteURL            string
	InternalConfig     InternalConfig
	Allocations        []ChannelAllocation
	LastSyncedAt       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CurrentSpend sums the spent budget of every allocation.
func (c Campaign) CurrentSpend() float64 {
	var total float64
	for _, a := range c.Allocations {
		total += a.SpentBudget
	}
	return total
}

// ActiveAllocations returns the allocations currently delivering on a channel.
func (c Campaign) ActiveAllocations() []ChannelAllocation {
	out := make([]ChannelAllocation, 0, len(c.Allocations))
	for _, a := range c.Allocations {
		if a.Status == StatusActive {
			out = append(out, a)
		}
	}
	return out
}

// Allocation returns the allocation for channelID, if any.
func (c Campaign) Allocation(channelID string) (ChannelAllocation, bool) {
	for _, a := range c.Allocations {
		if a.ChannelID == channelID {
			return a, true
		}
	}
	return ChannelAllocation{}, false
}

// MetricsStale reports whether the campaign actuals are older than maxAge.
func (c Campaign) MetricsStale(now time.Time, maxAge time.Duration) bool {
	if c.LastSyncedAt == nil {
		return true
	}
	return now.Sub(*c.LastSyncedAt) >= maxAge
}

// ChannelAllocation is the share of a campaign running on one channel.
type ChannelAllocation struct {
	CampaignID           int64
	ChannelID            string
	ChannelCampaignID    string
	AllocatedBudget      float64
	SpentBudget          float64
	Clicks               int64
	AchievedApplications int64
	CurrentCPA           float64
	BidAmount            float64
	Status               Status
}

// AllocationActuals holds the figures written back by a metrics sync.
type AllocationActuals struct {
	SpentBudget          float64
	Clicks               int64
	AchievedApplications int64
	CurrentCPA           float64
}

// ChannelStats is what a channel reports for a campaign over a date range.
type ChannelStats struct {
	Spend        float64
	Clicks       int64
	Impressions  int64
	Applications int64
}

// Add accumulates o into s.
func (s ChannelStats) Add(o ChannelStats) ChannelStats {
	return ChannelStats{
		Spend:        s.Spend + o.Spend,
		Clicks:       s.Clicks + o.Clicks,
		Impressions:  s.Impressions + o.Impressions,
		Applications: s.Applications + o.Applications,
	}
}

// CPA returns spend divided by applications, or zero without applications.
func (s ChannelStats) CPA() float64 {
	if s.Applications <= 0 {
		return 0
	}
	return s.Spend / float64(s.Applications)
}
