package domain

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError is a structural payload or rule violation. It blocks
// dispatch to a channel until the input is fixed.
type ValidationError struct {
	ChannelID string
	Problems  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for channel %s: %s", e.ChannelID, strings.Join(e.Problems, "; "))
}

// LimitExceededError reports a business-rule violation. It triggers
// remediation and is never fatal for a batch.
type LimitExceededError struct {
	CampaignID int64
	Dimension  LimitType
	Reason     string
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("campaign %d exceeds %s limit: %s", e.CampaignID, e.Dimension, e.Reason)
}

// ExternalChannelError wraps a network or API failure of a channel call.
type ExternalChannelError struct {
	ChannelID  string
	Op         string
	StatusCode int
	Retryable  bool
	RetryAfter time.Duration
	Err        error
}

func (e *ExternalChannelError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("channel %s %s: status %d: %v", e.ChannelID, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("channel %s %s: %v", e.ChannelID, e.Op, e.Err)
}

func (e *ExternalChannelError) Unwrap() error { return e.Err }

// ConfigParseError is returned when the stored internal config is not
// valid JSON. The config is then treated as empty with defaults applied.
type ConfigParseError struct {
	Err error
}

func (e *ConfigParseError) Error() string {
	return "parse internal config: " + e.Err.Error()
}

func (e *ConfigParseError) Unwrap() error { return e.Err }
