package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	// Validate LLM config
	switch cfg.LLM.Provider {
	case "openai", "gemini", "anthropic":
	case "":
		errs = append(errs, ValidationError{"llm.provider", "required"})
	default:
		errs = append(errs, ValidationError{"llm.provider", "must be 'openai', 'gemini' or 'anthropic'"})
	}

	if cfg.LLM.APIKey == "" {
		errs = append(errs, ValidationError{"llm.api_key", "required"})
	}

	// Validate embedding config (only if enabled)
	if cfg.Embedding.Enabled {
		if cfg.Embedding.Primary.Provider == "" {
			errs = append(errs, ValidationError{"embedding.primary.provider", "required when embeddings are enabled"})
		} else if cfg.Embedding.Primary.Provider != "gemini" && cfg.Embedding.Primary.Provider != "openai" {
			errs = append(errs, ValidationError{"embedding.primary.provider", "must be 'gemini' or 'openai'"})
		}

		if cfg.Embedding.Primary.APIKey == "" {
			errs = append(errs, ValidationError{"embedding.primary.api_key", "required when embeddings are enabled"})
		}
	}

	// Validate cache bounds
	if cfg.Cache.TTLSeconds <= 0 {
		errs = append(errs, ValidationError{"cache.ttl_seconds", "must be positive"})
	}
	if cfg.Cache.MaxSize <= 0 {
		errs = append(errs, ValidationError{"cache.max_size", "must be positive"})
	}

	// Validate similarity settings
	if cfg.Similarity.Threshold < 0 || cfg.Similarity.Threshold > 1 {
		errs = append(errs, ValidationError{"similarity.threshold", "must be between 0 and 1"})
	}
	if cfg.Similarity.MaxResults < 0 {
		errs = append(errs, ValidationError{"similarity.max_results", "must not be negative"})
	}

	if cfg.GitHub.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{"github.requests_per_second", "must not be negative"})
	}
	if cfg.Embedding.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{"embedding.requests_per_second", "must not be negative"})
	}

	return errs
}
