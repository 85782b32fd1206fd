package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/issuepilot/issuepilot/internal/analysis"
	"github.com/issuepilot/issuepilot/internal/cache"
	"github.com/issuepilot/issuepilot/internal/config"
	"github.com/issuepilot/issuepilot/internal/embedding"
	"github.com/issuepilot/issuepilot/internal/github"
	"github.com/issuepilot/issuepilot/internal/llm"
	"github.com/issuepilot/issuepilot/internal/service"
	"github.com/issuepilot/issuepilot/internal/similarity"
	"github.com/issuepilot/issuepilot/pkg/models"
)

// loadConfig resolves, loads and validates the configuration. A missing
// .env file is not an error.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		return nil, fmt.Errorf("config file not found")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return cfg, nil
}

// app holds the wired service graph.
type app struct {
	cfg      *config.Config
	gh       *github.Client
	provider llm.Provider
	embedder embedding.Provider
	analyzer *service.Analyzer
}

// buildApp constructs all collaborators from configuration.
func buildApp(cfg *config.Config) (*app, error) {
	gh, err := github.NewClient(github.Options{
		Token:             cfg.GitHub.Token,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
		MaxRetries:        cfg.GitHub.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	provider, err := llm.New(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	embedder, err := embedding.New(&cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	detector := similarity.NewDetector(embedder, cfg.Similarity.Threshold, cfg.Similarity.MaxResults)
	engine := analysis.NewEngine(provider)
	resultCache := cache.New[*models.AnalysisResult](cfg.Cache.MaxSize, cfg.Cache.TTL())

	return &app{
		cfg:      cfg,
		gh:       gh,
		provider: provider,
		embedder: embedder,
		analyzer: service.NewAnalyzer(gh, engine, detector, resultCache, cfg.GitHub.MaxOpenIssues),
	}, nil
}

// Close releases provider resources.
func (a *app) Close() {
	if a.provider != nil {
		_ = a.provider.Close()
	}
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	if a.gh != nil {
		_ = a.gh.Close()
	}
}
