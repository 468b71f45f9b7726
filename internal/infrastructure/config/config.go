package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Latency LatencyConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
}

// LatencyConfig tunes the simulated remote-API delays. The defaults match
// the latency contract callers are expected to accommodate.
type LatencyConfig struct {
	Login time.Duration `env:"SIM_LOGIN_LATENCY, default=500ms"`
	Read  time.Duration `env:"SIM_READ_LATENCY,  default=200ms"`
	Write time.Duration `env:"SIM_WRITE_LATENCY, default=300ms"`
}

// RedisConfig selects the durable session slot. An empty Addr falls back to
// the in-memory token storage.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
