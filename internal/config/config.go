package config

import (
	"github.com/caarlos0/env/v11"

	"atlas-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the ad engine.
// Fields are populated from environment variables using the
// caarlos0/env library; nested structs are tagged with envPrefix so
// their fields parse with the given prefix. See the individual types in
// the configs package for defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects which campaign-store backend to run against.
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL backend.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Mongo configures the MongoDB backend.
	Mongo configs.Mongo `envPrefix:"MONGO_"`

	// Redis configures the optional campaign-listing cache.
	Redis configs.Redis `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables into a Config.
// All fields fall back to their declared defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
