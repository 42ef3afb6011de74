package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/bankassist/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"BANKASSIST_RUNTIME_PATH" envDefault:".bankassist"`

	// Corpus and history locations; empty means inside the runtime directory
	CorpusPath  string `env:"BANK_CORPUS_PATH"`
	HistoryPath string `env:"BANK_HISTORY_PATH"`

	// Context Management
	MemoryWindow      int `env:"BANK_MEMORY_WINDOW" envDefault:"5"`
	PromptTokenBudget int `env:"BANK_PROMPT_TOKEN_BUDGET" envDefault:"3000"`

	// Transport Flags
	EnableHTTP     bool   `env:"BANK_ENABLE_HTTP" envDefault:"true"`
	HTTPAddr       string `env:"BANK_HTTP_ADDR" envDefault:":8080"`
	EnableTelegram bool   `env:"BANK_ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}

	// Keep path resolution identical to GetRuntimePath so the corpus and
	// history always live next to the .env file.
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetCorpusPath() string {
	if c.CorpusPath != "" {
		return c.CorpusPath
	}
	return filepath.Join(c.RuntimePath, "BankFAQs.csv")
}

func (c AppConfig) GetHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return filepath.Join(c.RuntimePath, "history.json")
}
