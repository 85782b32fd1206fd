package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	GitHub     GitHubConfig     `yaml:"github"`
	LLM        LLMConfig        `yaml:"llm"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Cache      CacheConfig      `yaml:"cache"`
	Similarity SimilarityConfig `yaml:"similarity"`
	Webhook    WebhookConfig    `yaml:"webhook"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port            string `yaml:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec"`
}

// ReadTimeout returns the read timeout as a duration
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the write timeout as a duration
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// GitHubConfig contains GitHub API settings
type GitHubConfig struct {
	Token             string `yaml:"token"`
	MaxOpenIssues     int    `yaml:"max_open_issues"`
	MaxRetries        int    `yaml:"max_retries"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
}

// LLMConfig contains LLM provider settings for analysis
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai", "gemini" or "anthropic"
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// EmbeddingConfig contains embedding provider settings
type EmbeddingConfig struct {
	Enabled           bool           `yaml:"enabled"`
	RequestsPerSecond int            `yaml:"requests_per_second"`
	Primary           ProviderConfig `yaml:"primary"`
	Fallback          ProviderConfig `yaml:"fallback"`
}

// ProviderConfig contains settings for an embedding provider
type ProviderConfig struct {
	Provider   string `yaml:"provider"` // "gemini" or "openai"
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	Dimensions int    `yaml:"dimensions"`
}

// CacheConfig contains analysis cache settings
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
	MaxSize    int `yaml:"max_size"`
}

// TTL returns the entry lifetime as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// SimilarityConfig contains duplicate detection settings
type SimilarityConfig struct {
	Threshold  float64 `yaml:"threshold"`
	MaxResults int     `yaml:"max_results"`
}

// WebhookConfig contains GitHub webhook settings. Analysis gates default to
// analyzing opened issues only; AnalyzeOnOpen is a pointer so an explicit
// false survives the defaulting pass.
type WebhookConfig struct {
	Secret         string   `yaml:"secret"`
	AnalyzeOnOpen  *bool    `yaml:"analyze_on_open"`
	AnalyzeOnEdit  bool     `yaml:"analyze_on_edit"`
	AnalyzeOnLabel bool     `yaml:"analyze_on_label"`
	RequiredLabel  string   `yaml:"required_label"`
	ExcludedLabels []string `yaml:"excluded_labels"`
}

// OnOpen reports whether opened issues trigger analysis
func (w WebhookConfig) OnOpen() bool {
	return w.AnalyzeOnOpen == nil || *w.AnalyzeOnOpen
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		"issuepilot.yaml",
		"issuepilot.yml",
		".github/issuepilot.yaml",
		".github/issuepilot.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "issuepilot", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.ReadTimeoutSec == 0 {
		cfg.Server.ReadTimeoutSec = 10
	}
	if cfg.Server.WriteTimeoutSec == 0 {
		cfg.Server.WriteTimeoutSec = 30
	}

	if cfg.GitHub.MaxOpenIssues == 0 {
		cfg.GitHub.MaxOpenIssues = 50
	}
	if cfg.GitHub.MaxRetries == 0 {
		cfg.GitHub.MaxRetries = 3
	}
	if cfg.GitHub.RequestsPerSecond == 0 {
		cfg.GitHub.RequestsPerSecond = 10
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}

	if cfg.Embedding.RequestsPerSecond == 0 {
		cfg.Embedding.RequestsPerSecond = 5
	}
	if cfg.Embedding.Primary.Dimensions == 0 {
		cfg.Embedding.Primary.Dimensions = 768
	}
	if cfg.Embedding.Fallback.Dimensions == 0 {
		cfg.Embedding.Fallback.Dimensions = 768
	}

	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Cache.MaxSize == 0 {
		cfg.Cache.MaxSize = 100
	}

	if cfg.Similarity.Threshold == 0 {
		cfg.Similarity.Threshold = 0.75
	}
	if cfg.Similarity.MaxResults == 0 {
		cfg.Similarity.MaxResults = 3
	}
}
