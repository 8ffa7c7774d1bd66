package configs

import "time"

// Redis configures the optional read-through cache for active-campaign
// listings. Disabled by default; when disabled the engine reads the
// store directly on every selection call.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Addr    string `env:"ADDR" envDefault:"localhost:6379"`
	// CacheTTL bounds how stale a cached placement listing may be.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}
