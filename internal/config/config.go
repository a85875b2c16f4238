package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	HistoryBackendMemory = "memory"
	HistoryBackendRedis  = "redis"
)

type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	RedisConfig RedisConfig
	History     HistoryConfig
	Log         LogConfig
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"720h"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// UpstreamConfig points at the external name generation API.
type UpstreamConfig struct {
	URL     string        `env:"UPSTREAM_URL" envDefault:"https://userapi.oax.workers.dev/"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
}

type HistoryConfig struct {
	Enable     bool   `env:"HISTORY_ENABLE" envDefault:"true"`
	Backend    string `env:"HISTORY_BACKEND" envDefault:"memory"`
	Capacity   int    `env:"HISTORY_CAPACITY" envDefault:"20"`
	MaxClients int    `env:"HISTORY_MAX_CLIENTS" envDefault:"10000"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other. The server request
// timeout must outlast the upstream timeout so upstream timeouts reach the
// client as 408 instead of being cut off by the router middleware.
func (c *Config) Validate() error {
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.Upstream.Timeout)
	}
	if c.Server.Timeout <= c.Upstream.Timeout {
		return fmt.Errorf("SERVER_TIMEOUT (%s) must be greater than UPSTREAM_TIMEOUT (%s)",
			c.Server.Timeout, c.Upstream.Timeout)
	}
	return nil
}
