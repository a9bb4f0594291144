package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Drivers accepted by STORE_DRIVER. The choice is made once at startup; there
// is no call-time fallback between backends.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret ships with a development-only default; override it anywhere
	// that matters.
	JWTSecret string        `env:"JWT_SECRET, default=dev_secret_change_me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	StoreDriver string `env:"STORE_DRIVER, default=postgres"`

	DB    DBConfig
	Redis RedisConfig

	// RateLimitPerMin caps requests per client IP on the auth routes.
	// Only effective when REDIS_ADDR is set.
	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN, default=60"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD, default=postgres"`
	Name     string `env:"DB_NAME,     default=neplink"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

type RedisConfig struct {
	// Addr left empty disables Redis-backed features (rate limiting).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StoreDriver != DriverPostgres && cfg.StoreDriver != DriverMemory {
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
