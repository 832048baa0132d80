package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/fleetcore/helmsman/internal/config"
	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/providers/fetch"
	"github.com/fleetcore/helmsman/internal/providers/knowledge"
	"github.com/fleetcore/helmsman/internal/providers/llm"
	"github.com/fleetcore/helmsman/internal/providers/search"
	"github.com/fleetcore/helmsman/internal/service/agent"
	"github.com/fleetcore/helmsman/internal/service/followup"
	"github.com/fleetcore/helmsman/internal/service/intelligence"
	"github.com/fleetcore/helmsman/internal/service/research"
	"github.com/fleetcore/helmsman/internal/storage"
	"github.com/fleetcore/helmsman/internal/storage/redis"
	"github.com/fleetcore/helmsman/internal/storage/sqlite"
	transport "github.com/fleetcore/helmsman/internal/transport/http"
	"github.com/fleetcore/helmsman/pkg/log"
	"github.com/fleetcore/helmsman/pkg/srv"
	"github.com/fleetcore/helmsman/pkg/tokens"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	serverCfg := config.NewServerConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	redisCfg := config.NewRedisConfig(ctx)
	searchCfg := config.NewSearchConfig(ctx)

	// 2. Session storage
	store, storageServices := initStorage(ctx, appCfg, redisCfg)
	services = append(services, storageServices...)

	// 3. Providers
	var completer core.Completer
	if llmCfg.Available() {
		completer = llm.NewClient(llmCfg.APIKey, llmCfg.BaseURL, llmCfg.Model)
	} else {
		logger.Warn().Msg("no completion provider configured, serving knowledge-base answers only")
	}

	searcher := search.NewClient(searchCfg.BaseURL, searchCfg.Timeout)
	grounded := llm.NewGrounded(completer, searcher)
	fetcher := fetch.NewFetcher(searchCfg.FetchTimeout)
	kb := knowledge.NewBase()

	// 4. Content scoring pool
	analyzer, err := intelligence.NewAnalyzer(appCfg.ScorerPoolSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize content analyzer")
	}
	services = append(services, srv.NewCleanup(func() error {
		analyzer.Release()
		return nil
	}))

	// 5. Agent
	ag := agent.NewAgent(
		store,
		completer,
		grounded,
		kb,
		research.NewOrchestrator(searcher, fetcher),
		analyzer,
		followup.NewGenerator(completer),
		agent.NewPrompter(tokens.NewCounter(), appCfg.ContextTokenBudget),
		appCfg.MaxSelectedSources,
	)

	// 6. Transport
	services = append(services, transport.NewServer(serverCfg, ag))

	return services
}

// initStorage prefers Redis when configured and falls back to the embedded
// sqlite database otherwise.
func initStorage(ctx context.Context, appCfg *config.AppConfig, redisCfg *config.RedisConfig) (storage.Store, []srv.Service) {
	logger := log.FromCtx(ctx)
	cache := storage.NewSessionCache(appCfg.SessionCacheSize)

	if redisCfg.Enabled() {
		backend, err := redis.NewBackend(ctx, redisCfg.Addr, redisCfg.Password, redisCfg.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, falling back to sqlite")
		} else {
			logger.Info().Str("addr", redisCfg.Addr).Msg("using redis session backend")
			return storage.NewStore(backend, cache), []srv.Service{srv.NewCleanup(backend.Close)}
		}
	}

	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize sqlite storage")
	}
	backend := sqlite.NewBackend(db)

	return storage.NewStore(backend, cache), []srv.Service{
		sqlite.NewJanitor(backend),
		srv.NewCleanup(db.Close),
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
