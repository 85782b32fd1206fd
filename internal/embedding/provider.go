// Package embedding wraps remote embedding providers behind one interface.
package embedding

import (
	"context"
	"fmt"

	"github.com/issuepilot/issuepilot/internal/config"
)

// Provider defines the interface for embedding generation
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Close() error
}

// New creates a provider from config. Returns nil (and no error) when
// embeddings are disabled; callers treat a nil provider as TF-IDF mode.
func New(cfg *config.EmbeddingConfig) (Provider, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	primary, err := create(&cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary embedding provider: %w", err)
	}

	var p Provider = primary
	if cfg.Fallback.Provider != "" && cfg.Fallback.APIKey != "" {
		fallback, err := create(&cfg.Fallback)
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback embedding provider: %w", err)
		}
		p = &Chain{primary: primary, fallback: fallback}
	}

	if cfg.RequestsPerSecond > 0 {
		p = Limit(p, cfg.RequestsPerSecond)
	}
	return p, nil
}

func create(cfg *config.ProviderConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.Model, cfg.Dimensions)
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.Dimensions)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}
}

// Truncate truncates text to maxLen characters
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen]
}
