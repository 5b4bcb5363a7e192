package config

import (
	"github.com/caarlos0/env/v11"

	"jobcast/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is added
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Kafka  configs.Kafka    `envPrefix:"KAFKA_"`
	Limits configs.Limits   `envPrefix:"LIMITS_"`
	Jooble configs.Jooble   `envPrefix:"JOOBLE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
