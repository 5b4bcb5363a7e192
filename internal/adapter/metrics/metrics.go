package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the enforcement engine.
type Metrics struct {
	// Checks counts dimension checks by outcome: within, exceeded, error.
	Checks *prometheus.CounterVec
	// Actions counts remediation actions by outcome: applied, failed, skipped.
	Actions *prometheus.CounterVec
	// CheckDuration is the latency of a full campaign check.
	CheckDuration prometheus.Histogram
	// BatchCampaigns counts batch entries by outcome: ok, failed, skipped.
	BatchCampaigns *prometheus.CounterVec
	// ChannelCalls counts external channel calls.
	ChannelCalls *prometheus.CounterVec
	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState *prometheus.GaugeVec
	// Notifications counts notifications handed to the sink.
	Notifications *prometheus.CounterVec
	// AuditBufferFill is the number of audit records waiting for flush.
	AuditBufferFill prometheus.Gauge
}

// NewMetrics registers the collectors on reg. A nil reg gets a private
// registry that is never exported, which keeps tests free of globals.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		Checks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "limits_checks_total",
			Help: "Limit checks by dimension and outcome.",
		}, []string{"dimension", "outcome"}),

		Actions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "limits_actions_total",
			Help: "Remediation actions by type and outcome.",
		}, []string{"type", "outcome"}),

		CheckDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "limits_check_duration_seconds",
			Help:    "Duration of a full campaign limit check.",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}),

		BatchCampaigns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "limits_batch_campaigns_total",
			Help: "Campaigns processed by batch runs by outcome.",
		}, []string{"outcome"}),

		ChannelCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "channel_calls_total",
			Help: "External channel API calls by channel, operation and outcome.",
		}, []string{"channel", "op", "outcome"}),

		CircuitBreakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "channel_circuit_breaker_state",
			Help: "Circuit breaker state per channel (0=closed, 1=half-open, 2=open).",
		}, []string{"channel"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "limits_notifications_total",
			Help: "Notifications handed to the sink by type and outcome.",
		}, []string{"type", "outcome"}),

		AuditBufferFill: f.NewGauge(prometheus.GaugeOpts{
			Name: "limits_audit_buffer_utilization",
			Help: "Audit records waiting to be flushed.",
		}),
	}
}

// Outcome maps an error to the "ok"/"error" label pair.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
