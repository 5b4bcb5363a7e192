package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobcast/internal/config/configs"
)

// NewRedisClient connects to cfg.Addr, given as host:port or redis:// URL,
// and pings it. It returns nil, nil when Redis is not configured.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	var opt *redis.Options
	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: cfg.Addr}
	}

	client := redis.NewClient(opt)
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
