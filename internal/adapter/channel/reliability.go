package channel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"jobcast/internal/adapter/metrics"
	"jobcast/internal/core/domain"
)

// ReliabilityConfig tunes the protection applied to one channel's API.
type ReliabilityConfig struct {
	// RatePerSecond and Burst configure the client side rate limiter.
	RatePerSecond float64
	Burst         int
	// Attempts is the number of tries for retryable failures.
	Attempts uint
	// CallTimeout bounds every single attempt.
	CallTimeout time.Duration
	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration
	// BreakerFailures trips the breaker after that many consecutive failures.
	BreakerFailures uint32
}

func (c ReliabilityConfig) withDefaults() ReliabilityConfig {
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 10
	}
	if c.Burst <= 0 {
		c.Burst = 5
	}
	if c.Attempts == 0 {
		c.Attempts = 3
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 30 * time.Second
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = 30 * time.Second
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 5
	}
	return c
}

// Reliable wraps calls to a channel API with rate limiting, a circuit
// breaker, retries and a per-attempt timeout, in that order.
type Reliable struct {
	channelID string
	cfg       ReliabilityConfig
	cb        *gobreaker.CircuitBreaker
	limiter   *rate.Limiter
	metrics   *metrics.Metrics
}

// NewReliable builds the wrapper for channelID. m may be nil.
func NewReliable(channelID string, cfg ReliabilityConfig, m *metrics.Metrics) *Reliable {
	cfg = cfg.withDefaults()
	if m == nil {
		m = metrics.NewMetrics(nil)
	}

	w := &Reliable{
		channelID: channelID,
		cfg:       cfg,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		metrics:   m,
	}
	w.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "channel-" + channelID,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// Client errors say nothing about the channel's health.
		IsSuccessful: func(err error) bool {
			return err == nil || !IsRetryable(err)
		},
		OnStateChange: func(_ string, _, to gobreaker.State) {
			m.CircuitBreakerState.WithLabelValues(channelID).Set(float64(to))
		},
	})
	m.CircuitBreakerState.WithLabelValues(channelID).Set(0)
	return w
}

// Do runs fn under the protection chain. op labels metrics and errors.
func (w *Reliable) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := w.do(ctx, op, fn)
	w.metrics.ChannelCalls.WithLabelValues(w.channelID, op, metrics.Outcome(err)).Inc()
	return err
}

func (w *Reliable) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return &domain.ExternalChannelError{ChannelID: w.channelID, Op: op, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	_, err := w.cb.Execute(func() (interface{}, error) {
		r := retry.New(
			retry.Context(ctx),
			retry.Attempts(w.cfg.Attempts),
			retry.LastErrorOnly(true),
			retry.RetryIf(IsRetryable),
			retry.DelayType(func(n uint, err error, config retry.DelayContext) time.Duration {
				var chErr *domain.ExternalChannelError
				if errors.As(err, &chErr) && chErr.RetryAfter > 0 {
					return chErr.RetryAfter
				}
				return retry.BackOffDelay(n, err, config)
			}),
		)
		return nil, r.Do(func() error {
			tCtx, cancel := context.WithTimeout(ctx, w.cfg.CallTimeout)
			defer cancel()
			return fn(tCtx)
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.ExternalChannelError{ChannelID: w.channelID, Op: op, Err: err}
	}
	return err
}

// IsRetryable reports whether err is worth another attempt: transport
// failures, timeouts and channel errors flagged retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var chErr *domain.ExternalChannelError
	if errors.As(err, &chErr) {
		return chErr.Retryable
	}
	return true
}
