package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration, read from the environment.
// DATABASE_URL and REDIS_ADDR are required; startup fails without them.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,required"`
	RedisAddr     string        `env:"REDIS_ADDR,required"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	Port          string        `env:"PORT" envDefault:"8080"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"1"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
