package server

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/issuepilot/issuepilot/internal/analysis"
	"github.com/issuepilot/issuepilot/internal/config"
	"github.com/issuepilot/issuepilot/internal/github"
	"github.com/issuepilot/issuepilot/internal/service"
	"github.com/issuepilot/issuepilot/internal/webhook"
)

var repoPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// webhookTimeout bounds background analyses triggered by webhook events.
const webhookTimeout = 2 * time.Minute

// rateLimiter reads the forge rate limit status.
type rateLimiter interface {
	RateLimit(ctx context.Context) (*github.RateLimitInfo, error)
}

type handler struct {
	cfg      *config.Config
	analyzer *service.Analyzer
	gh       rateLimiter
}

func newHandler(cfg *config.Config, analyzer *service.Analyzer, gh rateLimiter) *handler {
	return &handler{cfg: cfg, analyzer: analyzer, gh: gh}
}

func (h *handler) Register(app *fiber.App) {
	app.Get("/", h.info)
	app.Get("/health", h.health)
	app.Post("/analyze", h.analyze)
	app.Post("/analyze/batch", h.analyzeBatch)
	app.Post("/export", h.export)
	app.Get("/rate-limit", h.rateLimit)
	app.Get("/cache/stats", h.cacheStats)
	app.Post("/cache/clear", h.cacheClear)
	app.Post("/webhook/github", h.githubWebhook)
}

type analyzeRequest struct {
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
}

type batchRequest struct {
	Repo         string `json:"repo"`
	IssueNumbers []int  `json:"issue_numbers"`
}

func (h *handler) info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "issuepilot",
		"version": Version,
		"endpoints": fiber.Map{
			"analyze":       "POST /analyze",
			"analyze_batch": "POST /analyze/batch",
			"export":        "POST /export",
			"health":        "GET /health",
			"rate_limit":    "GET /rate-limit",
			"cache_stats":   "GET /cache/stats",
			"cache_clear":   "POST /cache/clear",
			"webhook":       "POST /webhook/github",
		},
	})
}

func (h *handler) health(c *fiber.Ctx) error {
	stats := h.analyzer.CacheStats()
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"version":           Version,
		"cache_size":        stats.Size,
		"cache_ttl_seconds": stats.TTLSeconds,
		"dependencies": fiber.Map{
			"llm_provider":      h.cfg.LLM.Provider,
			"embedding_enabled": h.cfg.Embedding.Enabled,
		},
	})
}

func (h *handler) analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := validateTarget(req.Repo, req.IssueNumber); err != nil {
		return err
	}

	result, cached, err := h.analyzer.Analyze(c.Context(), req.Repo, req.IssueNumber)
	if err != nil {
		return mapAnalysisError(err)
	}

	return c.JSON(fiber.Map{
		"repo":         req.Repo,
		"issue_number": req.IssueNumber,
		"cached":       cached,
		"analysis":     result,
	})
}

func (h *handler) analyzeBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if !repoPattern.MatchString(req.Repo) {
		return fiber.NewError(fiber.StatusBadRequest, "repo must be in owner/name format")
	}
	for _, n := range req.IssueNumbers {
		if n <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "issue numbers must be positive")
		}
	}

	batch, err := h.analyzer.AnalyzeBatch(c.Context(), req.Repo, req.IssueNumbers)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(batch)
}

func (h *handler) export(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := validateTarget(req.Repo, req.IssueNumber); err != nil {
		return err
	}

	result, _, err := h.analyzer.Analyze(c.Context(), req.Repo, req.IssueNumber)
	if err != nil {
		return mapAnalysisError(err)
	}

	return c.JSON(fiber.Map{
		"repo":         req.Repo,
		"issue_number": req.IssueNumber,
		"markdown":     analysis.ExportMarkdown(result, req.Repo, req.IssueNumber),
	})
}

func (h *handler) rateLimit(c *fiber.Ctx) error {
	if h.gh == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "GitHub client not configured")
	}
	info, err := h.gh.RateLimit(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(info)
}

func (h *handler) cacheStats(c *fiber.Ctx) error {
	return c.JSON(h.analyzer.CacheStats())
}

func (h *handler) cacheClear(c *fiber.Ctx) error {
	cleared := h.analyzer.ClearCache()
	return c.JSON(fiber.Map{
		"message":         "cache cleared",
		"entries_cleared": cleared,
	})
}

func (h *handler) githubWebhook(c *fiber.Ctx) error {
	body := c.Body()

	if !webhook.VerifySignature(h.cfg.Webhook.Secret, body, c.Get("X-Hub-Signature-256")) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook signature")
	}

	event := c.Get("X-GitHub-Event")
	if event != "issues" {
		return c.JSON(fiber.Map{"message": "event ignored"})
	}

	payload, err := webhook.Parse(body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ok, reason := webhook.ShouldAnalyze(&h.cfg.Webhook, payload)
	if !ok {
		return c.JSON(fiber.Map{"message": reason})
	}

	jobID := uuid.NewString()
	repo := payload.Repository.FullName
	number := payload.Issue.Number

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
		defer cancel()

		if _, _, err := h.analyzer.Analyze(ctx, repo, number); err != nil {
			log.Printf("webhook job %s: analysis of %s#%d failed: %v", jobID, repo, number, err)
			return
		}
		log.Printf("webhook job %s: analyzed %s#%d", jobID, repo, number)
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id":  jobID,
		"message": "analysis scheduled",
	})
}

func validateTarget(repo string, number int) error {
	if !repoPattern.MatchString(repo) {
		return fiber.NewError(fiber.StatusBadRequest, "repo must be in owner/name format")
	}
	if number <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "issue_number must be positive")
	}
	return nil
}

func mapAnalysisError(err error) error {
	if errors.Is(err, github.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "issue not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
