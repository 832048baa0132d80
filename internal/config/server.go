package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fleetcore/helmsman/pkg/log"
)

type ServerConfig struct {
	Addr         string   `env:"HTTP_ADDR" envDefault:":8080"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	// Stream guard: a turn is aborted when either ceiling is exceeded
	StreamTimeout time.Duration `env:"STREAM_TIMEOUT" envDefault:"120s"`
	ChunkTimeout  time.Duration `env:"STREAM_CHUNK_TIMEOUT" envDefault:"30s"`
}

func NewServerConfig(ctx context.Context) *ServerConfig {
	c := &ServerConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Server config")
	}
	return c
}
