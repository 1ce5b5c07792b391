package redis

import (
	"time"

	"github.com/carlosmariath/painel-clinica-sub001/config"
)

type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	PoolSize     int
	MinIdleConns int

	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

func (c Config) DialTimeout() time.Duration  { return secondsOr(c.DialTimeoutSeconds, 5*time.Second) }
func (c Config) ReadTimeout() time.Duration  { return secondsOr(c.ReadTimeoutSeconds, 3*time.Second) }
func (c Config) WriteTimeout() time.Duration { return secondsOr(c.WriteTimeoutSeconds, 3*time.Second) }

func secondsOr(s int, fallback time.Duration) time.Duration {
	if s <= 0 {
		return fallback
	}
	return time.Duration(s) * time.Second
}

// FromCentralConfig maps the central configuration onto package Config,
// filling in pool defaults when unset.
func FromCentralConfig(c config.RedisConfig) Config {
	cfg := Config{
		Addr:                c.Addr,
		DB:                  c.DB,
		Username:            c.Username,
		Password:            c.Password,
		PoolSize:            c.PoolSize,
		MinIdleConns:        c.MinIdleConns,
		DialTimeoutSeconds:  c.DialTimeoutSeconds,
		ReadTimeoutSeconds:  c.ReadTimeoutSeconds,
		WriteTimeoutSeconds: c.WriteTimeoutSeconds,
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 10
	}
	if cfg.MinIdleConns <= 0 {
		cfg.MinIdleConns = 2
	}
	return cfg
}
