package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/fleetcore/helmsman/pkg/log"
)

type AppConfig struct {
	// Context Management
	ContextTokenBudget int `env:"CONTEXT_TOKEN_BUDGET" envDefault:"600"`
	MaxSelectedSources int `env:"MAX_SELECTED_SOURCES" envDefault:"5"`
	ScorerPoolSize     int `env:"SCORER_POOL_SIZE" envDefault:"8"`
	SessionCacheSize   int `env:"SESSION_CACHE_SIZE" envDefault:"1000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// GetRuntimePath resolves the runtime directory from the environment. It is
// a package function because the .env file living there must be loaded
// before any config struct is parsed.
func GetRuntimePath() string {
	path := os.Getenv("HELMSMAN_RUNTIME_PATH")
	if path == "" {
		path = ".helmsman"
	}
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(GetRuntimePath(), "helmsman.db")
}

func IsDebug() bool {
	return os.Getenv("HELMSMAN_DEBUG") == "true" || os.Getenv("HELMSMAN_DEBUG") == "1"
}
