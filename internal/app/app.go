// Package app wires the enforcement engine from configuration. Both the
// server and the limitsctl tool build their dependencies here.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"jobcast/internal/adapter/channel"
	"jobcast/internal/adapter/channel/jooble"
	"jobcast/internal/adapter/kafka"
	"jobcast/internal/adapter/metrics"
	"jobcast/internal/adapter/policy"
	"jobcast/internal/adapter/postgres"
	"jobcast/internal/adapter/redis"
	"jobcast/internal/adapter/usecase"
	"jobcast/internal/config"
	"jobcast/internal/core/port"
	"jobcast/internal/db"
)

// App holds the wired engine. Close releases everything New opened.
type App struct {
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Policies   *policy.Registry
	Adapters   *channel.Registry
	Store      *postgres.CampaignStore
	AuditLog   *postgres.AuditRepository
	Trail      *usecase.AuditTrail
	Syncer     *usecase.MetricsSyncer
	Controller *usecase.LimitsController
	Middleware *usecase.PolicyMiddleware
	Dispatcher *usecase.Dispatcher

	pool     *pgxpool.Pool
	redis    *goredis.Client
	notifier *kafka.Notifier
	logger   *slog.Logger
}

// New connects to the backing services and builds the engine. The audit
// trail is started; Close stops it.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *App, err error) {
	a := &App{logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.pool, err = db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = metrics.NewMetrics(a.Registry)

	a.Policies = policy.NewRegistry(logger)
	if cfg.Limits.PolicyFile != "" {
		if err = policy.LoadFile(cfg.Limits.PolicyFile, a.Policies); err != nil {
			return nil, fmt.Errorf("policies: %w", err)
		}
	}

	a.Adapters = channel.NewRegistry()
	if cfg.Jooble.BaseURL != "" {
		client, err := jooble.NewClient(jooble.Config{
			BaseURL: cfg.Jooble.BaseURL,
			APIKey:  cfg.Jooble.APIKey,
			Reliability: channel.ReliabilityConfig{
				RatePerSecond: cfg.Jooble.RatePerSecond,
				Burst:         cfg.Jooble.Burst,
				Attempts:      cfg.Jooble.Attempts,
				CallTimeout:   cfg.Limits.ChannelTimeout,
			},
			Metrics: a.Metrics,
		})
		if err != nil {
			return nil, fmt.Errorf("jooble: %w", err)
		}
		a.Adapters.Register(jooble.NewAdapter(client, logger))
	} else {
		logger.Warn("jooble channel not configured")
	}

	a.Store = postgres.NewCampaignStore(a.pool, logger)
	a.AuditLog = postgres.NewAuditRepository(a.pool)
	a.Syncer = usecase.NewMetricsSyncer(a.Store, a.Adapters, cfg.Limits.ChannelTimeout, logger)

	var notifier port.Notifier
	if len(cfg.Kafka.Brokers) > 0 {
		w, err := kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, fmt.Errorf("kafka: %w", err)
		}
		a.notifier = kafka.NewNotifier(w, a.Metrics, logger)
		notifier = a.notifier
	} else {
		notifier = usecase.NewLogNotifier(logger)
	}

	var lease port.Lease
	a.redis, err = db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	if a.redis != nil {
		lease = redis.NewLease(a.redis, cfg.Redis.KeyPrefix, logger)
	} else {
		logger.Warn("redis not configured, campaign leases are process local")
		lease = usecase.NewMemoryLease()
	}

	a.Trail = usecase.NewAuditTrail(a.AuditLog, a.Metrics, logger)
	a.Trail.Start()

	a.Controller = usecase.NewLimitsController(usecase.ControllerDeps{
		Store:    a.Store,
		Adapters: a.Adapters,
		Policies: a.Policies,
		Source:   a.Syncer,
		Notifier: notifier,
		Lease:    lease,
		Auditor:  a.Trail,
		Metrics:  a.Metrics,
	}, usecase.ControllerConfig{
		Concurrency:      cfg.Limits.Concurrency,
		ChannelTimeout:   cfg.Limits.ChannelTimeout,
		MetricsFreshness: cfg.Limits.MetricsFreshness,
		LeaseTTL:         cfg.Limits.LeaseTTL,
	}, logger)

	a.Middleware = usecase.NewPolicyMiddleware(a.Policies, a.Adapters, a.Store, a.Controller, a.Trail, cfg.Limits.ChannelTimeout, logger)
	a.Dispatcher = usecase.NewDispatcher(a.Store, a.Adapters, a.Middleware, a.Trail, cfg.Limits.ChannelTimeout, logger)

	return a, nil
}

// Close flushes the audit trail and the notification writer, then closes
// the connections.
func (a *App) Close() error {
	var errs []error
	if a.Trail != nil {
		a.Trail.Stop()
	}
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka writer: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	return errors.Join(errs...)
}
