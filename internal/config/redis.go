package config

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/fleetcore/helmsman/pkg/log"
)

// RedisConfig is optional: with no address configured the session store
// falls back to the embedded sqlite backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func NewRedisConfig(ctx context.Context) *RedisConfig {
	c := &RedisConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Redis config")
	}
	return c
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}
