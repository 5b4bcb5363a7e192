package configs

import "time"

// Limits tunes the enforcement engine.
type Limits struct {
	// Interval between two scheduled batch checks. Zero disables the
	// scheduler; checks then only run through the admin API or the CLI.
	Interval time.Duration `env:"INTERVAL" envDefault:"5m"`
	// Concurrency bounds the campaigns checked in parallel.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// ChannelTimeout bounds each call to an external channel.
	ChannelTimeout time.Duration `env:"CHANNEL_TIMEOUT" envDefault:"30s"`
	// MetricsFreshness is how old actuals may get before a check refreshes them.
	MetricsFreshness time.Duration `env:"METRICS_FRESHNESS" envDefault:"5m"`
	LeaseTTL         time.Duration `env:"LEASE_TTL" envDefault:"2m"`
	// PolicyFile is an optional YAML file with per-channel policies.
	PolicyFile string `env:"POLICY_FILE"`
}
