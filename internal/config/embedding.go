package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type EmbeddingConfig struct {
	Provider string `env:"BANK_EMBED_PROVIDER" envDefault:"ollama"`
	Model    string `env:"BANK_EMBED_MODEL" envDefault:"nomic-embed-text"`

	OllamaBaseURL string `env:"BANK_OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OpenAIAPIKey  string `env:"BANK_OPENAI_API_KEY"`
}

func NewEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	cfg := &EmbeddingConfig{}
	if err := env.Parse(cfg); err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("failed to parse embedding config")
	}
	return cfg
}
