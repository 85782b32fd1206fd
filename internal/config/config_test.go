package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "expands env var",
			input:  "${TEST_VAR}",
			expect: "test-value",
		},
		{
			name:   "keeps unset var",
			input:  "${UNSET_VAR}",
			expect: "${UNSET_VAR}",
		},
		{
			name:   "expands in string",
			input:  "token-${TEST_VAR}-suffix",
			expect: "token-test-value-suffix",
		},
		{
			name:   "no vars",
			input:  "plain string",
			expect: "plain string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandEnvVars(tt.input)
			if result != tt.expect {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, result, tt.expect)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	content := `
server:
  port: "9000"

llm:
  provider: "openai"
  model: "gpt-4o-mini"
  api_key: "test-key"

embedding:
  enabled: true
  primary:
    provider: "gemini"
    model: "gemini-embedding-001"
    api_key: "test-key"

cache:
  ttl_seconds: 60
  max_size: 10
`

	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %v, want 9000", cfg.Server.Port)
	}
	if cfg.Embedding.Primary.Provider != "gemini" {
		t.Errorf("Embedding.Primary.Provider = %v, want gemini", cfg.Embedding.Primary.Provider)
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Errorf("Cache.TTLSeconds = %v, want 60", cfg.Cache.TTLSeconds)
	}
	if cfg.Cache.MaxSize != 10 {
		t.Errorf("Cache.MaxSize = %v, want 10", cfg.Cache.MaxSize)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Similarity.Threshold != 0.75 {
		t.Errorf("Similarity.Threshold = %v, want 0.75", cfg.Similarity.Threshold)
	}
	if cfg.Similarity.MaxResults != 3 {
		t.Errorf("Similarity.MaxResults = %v, want 3", cfg.Similarity.MaxResults)
	}
	if cfg.Cache.TTLSeconds != 300 {
		t.Errorf("Cache.TTLSeconds = %v, want 300", cfg.Cache.TTLSeconds)
	}
	if cfg.Cache.MaxSize != 100 {
		t.Errorf("Cache.MaxSize = %v, want 100", cfg.Cache.MaxSize)
	}
	if cfg.GitHub.MaxOpenIssues != 50 {
		t.Errorf("GitHub.MaxOpenIssues = %v, want 50", cfg.GitHub.MaxOpenIssues)
	}
	if !cfg.Webhook.OnOpen() {
		t.Error("Webhook.OnOpen() = false by default, want true")
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{}
	applyDefaults(valid)
	valid.LLM.APIKey = "key"

	if errs := Validate(valid); len(errs) != 0 {
		t.Fatalf("Validate(valid) = %v, want no errors", errs)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "missing llm api key",
			mutate: func(c *Config) { c.LLM.APIKey = "" },
			field:  "llm.api_key",
		},
		{
			name:   "bad llm provider",
			mutate: func(c *Config) { c.LLM.Provider = "cohere" },
			field:  "llm.provider",
		},
		{
			name:   "threshold above one",
			mutate: func(c *Config) { c.Similarity.Threshold = 1.5 },
			field:  "similarity.threshold",
		},
		{
			name:   "threshold below zero",
			mutate: func(c *Config) { c.Similarity.Threshold = -0.1 },
			field:  "similarity.threshold",
		},
		{
			name:   "negative ttl",
			mutate: func(c *Config) { c.Cache.TTLSeconds = -1 },
			field:  "cache.ttl_seconds",
		},
		{
			name:   "negative max size",
			mutate: func(c *Config) { c.Cache.MaxSize = -1 },
			field:  "cache.max_size",
		},
		{
			name:   "embeddings enabled without provider",
			mutate: func(c *Config) { c.Embedding.Enabled = true },
			field:  "embedding.primary.provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			cfg.LLM.APIKey = "key"
			tt.mutate(cfg)

			errs := Validate(cfg)
			if len(errs) == 0 {
				t.Fatalf("Validate() returned no errors, want error on %s", tt.field)
			}

			found := false
			for _, err := range errs {
				if ve, ok := err.(ValidationError); ok && ve.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors %v do not mention %s", errs, tt.field)
			}
		})
	}
}
