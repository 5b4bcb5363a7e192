package domain

import (
	"bytes"
	"encoding/json"
	"time"
	// Campaign timezones must resolve in minimal containers too.
	_ "time/tzdata"
)

const (
	DefaultTimezone    = "UTC"
	DefaultBidStrategy = "manual"
)

// InternalConfig is campaign governance data kept on the platform side only.
// It is never transmitted to an external channel.
type InternalConfig struct {
	MaxCPC           float64    `json:"maxCPC,omitempty"`
	DailyBudget      float64    `json:"dailyBudget,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Timezone         string     `json:"timezone,omitempty"`
	BidStrategy      string     `json:"bidStrategy,omitempty"`
	AutoPausedReason string     `json:"autoPausedReason,omitempty"`
	AutoPausedAt     *time.Time `json:"autoPausedAt,omitempty"`
}

// ParseInternalConfig decodes the stored JSON blob and applies defaults.
// Malformed input yields the default config together with a
// *ConfigParseError; callers are expected to log it and carry on.
func ParseInternalConfig(raw []byte) (InternalConfig, error) {
	var cfg InternalConfig
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return cfg.WithDefaults(), nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return InternalConfig{}.WithDefaults(), &ConfigParseError{Err: err}
	}
	return cfg.WithDefaults(), nil
}

// WithDefaults normalises the config: negative amounts become zero, an
// unknown timezone falls back to UTC and an empty bid strategy to manual.
func (c InternalConfig) WithDefaults() InternalConfig {
	if c.MaxCPC < 0 {
		c.MaxCPC = 0
	}
	if c.DailyBudget < 0 {
		c.DailyBudget = 0
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	} else if _, err := time.LoadLocation(c.Timezone); err != nil {
		c.Timezone = DefaultTimezone
	}
	if c.BidStrategy == "" {
		c.BidStrategy = DefaultBidStrategy
	}
	return c
}

// Location resolves the campaign timezone.
func (c InternalConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil || c.Timezone == "" {
		return time.UTC
	}
	return loc
}

// StartOfDay returns midnight of now's day in the campaign timezone.
func (c InternalConfig) StartOfDay(now time.Time) time.Time {
	local := now.In(c.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// Marshal encodes the config for storage.
func (c InternalConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}
