package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type LLMConfig struct {
	Provider string `env:"BANK_LLM_PROVIDER" envDefault:"gemini"`
	Model    string `env:"BANK_LLM_MODEL" envDefault:"gemini-1.5-flash"`

	GeminiAPIKey     string `env:"BANK_GEMINI_API_KEY"`
	OpenAIAPIKey     string `env:"BANK_OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"BANK_OPENROUTER_API_KEY"`
	OllamaBaseURL    string `env:"BANK_OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey     string `env:"BANK_OLLAMA_API_KEY"`
	CustomBaseURL    string `env:"BANK_CUSTOM_OPENAI_BASE_URL"`
	CustomAPIKey     string `env:"BANK_CUSTOM_OPENAI_API_KEY"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	cfg := &LLMConfig{}
	if err := env.Parse(cfg); err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return cfg
}
