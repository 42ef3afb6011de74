package embed

import (
	"context"
	"fmt"

	"github.com/sandevgo/bankassist/internal/config"
	"github.com/sandevgo/bankassist/internal/core"
	"github.com/sandevgo/bankassist/pkg/log"
)

// NewProvider creates the appropriate Embedder based on configuration.
// The same provider must serve corpus build and query time so vectors share
// a space.
func NewProvider(ctx context.Context, cfg *config.EmbeddingConfig) (core.Embedder, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting embedding provider")

	switch cfg.Provider {
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.Model), nil
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}
}
