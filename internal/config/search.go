package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fleetcore/helmsman/pkg/log"
)

// SearchConfig points at the metasearch endpoint. Optional: without it the
// research paths degrade to zero external sources.
type SearchConfig struct {
	BaseURL      string        `env:"SEARCH_BASE_URL"`
	Timeout      time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
}

func NewSearchConfig(ctx context.Context) *SearchConfig {
	c := &SearchConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Search config")
	}
	return c
}
