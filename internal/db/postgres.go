package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobcast/internal/config/configs"
)

const (
	pingTimeout     = 5 * time.Second
	applicationName = "jobcast"
)

// NewPostgresPool opens a pool for cfg and pings it. The caller must close
// the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres address: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConf.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if _, ok := poolConf.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConf.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
