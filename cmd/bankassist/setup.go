package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/bankassist/internal/config"
	"github.com/sandevgo/bankassist/internal/corpus"
	"github.com/sandevgo/bankassist/internal/index"
	"github.com/sandevgo/bankassist/internal/providers/embed"
	"github.com/sandevgo/bankassist/internal/providers/llm"
	"github.com/sandevgo/bankassist/internal/service/command"
	"github.com/sandevgo/bankassist/internal/service/engine"
	"github.com/sandevgo/bankassist/internal/service/memory"
	"github.com/sandevgo/bankassist/internal/storage/history"
	"github.com/sandevgo/bankassist/internal/transport/telegram"
	"github.com/sandevgo/bankassist/internal/transport/web"
	"github.com/sandevgo/bankassist/pkg/log"
	"github.com/sandevgo/bankassist/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)

	eng, hist, err := buildEngine(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize answer engine")
	}
	services = append(services, srv.NewCleanup(hist.Close))

	transports, err := initTransports(ctx, appCfg, eng)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

// buildEngine wires the full answer pipeline: corpus, index, history,
// memory and providers.
func buildEngine(ctx context.Context, appCfg *config.AppConfig) (*engine.Engine, *history.Log, error) {
	logger := log.FromCtx(ctx)

	// 1. FAQ Corpus
	entries, err := corpus.Load(appCfg.GetCorpusPath())
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Int("entries", len(entries)).Str("path", appCfg.GetCorpusPath()).Msg("loaded faq corpus")

	// 2. Embedding Provider + Retrieval Index
	embedCfg := config.NewEmbeddingConfig(ctx)
	embedder, err := embed.NewProvider(ctx, embedCfg)
	if err != nil {
		return nil, nil, err
	}

	idx, err := index.Build(ctx, entries, embedder)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Int("vectors", idx.Size()).Msg("built retrieval index")

	// 3. Durable history + in-memory conversation window
	hist, err := history.NewLog(ctx, appCfg.GetHistoryPath())
	if err != nil {
		return nil, nil, err
	}
	mem := memory.NewWindow(appCfg.MemoryWindow)

	// 4. Answer Provider
	llmCfg := config.NewLLMConfig(ctx)
	generator, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		return nil, nil, err
	}

	return engine.NewEngine(appCfg, idx, generator, mem, hist), hist, nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, eng *engine.Engine) ([]srv.Service, error) {
	var services []srv.Service

	// HTTP API
	if cfg.EnableHTTP {
		services = append(services, web.NewServer(ctx, cfg, eng))
	}

	// Telegram Bot
	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		router := command.New(command.NewCommands(eng))
		bot, err := telegram.NewBot(ctx, tgCfg, eng, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
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
