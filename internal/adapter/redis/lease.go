package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"jobcast/internal/core/port"
)

const releaseTimeout = 2 * time.Second

// releaseScript deletes the key only while it still holds our token, so a
// holder whose lease expired cannot free its successor's lease.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lease is a port.Lease shared by every process using the same Redis.
type Lease struct {
	client goredis.Cmdable
	prefix string
	logger *slog.Logger
}

var _ port.Lease = (*Lease)(nil)

// NewLease accepts a *redis.Client or a *redis.ClusterClient.
func NewLease(client goredis.Cmdable, prefix string, logger *slog.Logger) *Lease {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lease{client: client, prefix: prefix, logger: logger.With(slog.String("mod", "lease"))}
}

// Acquire sets key with a random token if it is absent. It returns
// port.ErrLeaseHeld when another holder owns the key.
func (l *Lease) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	full := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, full, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, port.ErrLeaseHeld
	}

	return func() {
		// The caller's context may be cancelled by the time it releases.
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{full}, token).Err(); err != nil {
			l.logger.Warn("lease release failed, waiting for expiry", slog.String("key", full), slog.Any("error", err))
		}
	}, nil
}
