package config

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/fleetcore/helmsman/pkg/log"
)

// LLMConfig carries the completion service credentials. The API key is
// optional on purpose: without it the server still starts and the router
// degrades to knowledge-base answers.
type LLMConfig struct {
	APIKey  string `env:"LLM_API_KEY"`
	BaseURL string `env:"LLM_BASE_URL"`
	Model   string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}

func (c LLMConfig) Available() bool {
	return c.APIKey != "" || c.BaseURL != ""
}
