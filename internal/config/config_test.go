package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Minute, cfg.Limits.Interval)
	assert.Equal(t, 8, cfg.Limits.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Limits.ChannelTimeout)
	assert.Equal(t, "campaign-notifications", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "postgres", cfg.Psql.Addr.Scheme)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LIMITS_INTERVAL", "30s")
	t.Setenv("JOOBLE_BASE_URL", "https://api.jooble.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Limits.Interval)
	assert.Equal(t, "https://api.jooble.test", cfg.Jooble.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}
