package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/issuepilot/issuepilot/internal/cache"
	"github.com/issuepilot/issuepilot/pkg/models"
)

// maxBatchSize bounds how many issues a single batch request may analyze.
const maxBatchSize = 10

// IssueFetcher reads issues from the source forge.
type IssueFetcher interface {
	GetIssue(ctx context.Context, repo string, number int) (*models.Issue, error)
	ListOpenIssues(ctx context.Context, repo string, max int) ([]*models.Issue, error)
}

// AnalysisEngine produces a structured analysis for an issue.
type AnalysisEngine interface {
	Analyze(ctx context.Context, issue *models.Issue) (*models.AnalysisResult, error)
}

// SimilarityDetector ranks open issues by similarity to a target.
type SimilarityDetector interface {
	FindSimilar(ctx context.Context, target *models.Issue, candidates []*models.Issue) []models.SimilarIssue
}

// Analyzer orchestrates fetching, analyzing and duplicate detection
// for issues, with results served from a bounded cache.
type Analyzer struct {
	fetcher   IssueFetcher
	engine    AnalysisEngine
	detector  SimilarityDetector
	cache     *cache.Cache[*models.AnalysisResult]
	maxIssues int
	batchPar  int
}

// NewAnalyzer wires an analyzer from its collaborators.
func NewAnalyzer(fetcher IssueFetcher, engine AnalysisEngine, detector SimilarityDetector, c *cache.Cache[*models.AnalysisResult], maxIssues int) *Analyzer {
	if maxIssues <= 0 {
		maxIssues = 50
	}
	return &Analyzer{
		fetcher:   fetcher,
		engine:    engine,
		detector:  detector,
		cache:     c,
		maxIssues: maxIssues,
		batchPar:  3,
	}
}

// Analyze returns the analysis for one issue. The second return value
// reports whether the result was served from cache.
func (a *Analyzer) Analyze(ctx context.Context, repo string, number int) (*models.AnalysisResult, bool, error) {
	key := cache.Key(repo, number)
	if result, ok := a.cache.Get(key); ok {
		return result, true, nil
	}

	issue, err := a.fetcher.GetIssue(ctx, repo, number)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch issue %s: %w", key, err)
	}

	result, err := a.engine.Analyze(ctx, issue)
	if err != nil {
		return nil, false, fmt.Errorf("failed to analyze issue %s: %w", key, err)
	}

	result.SimilarIssues = a.findSimilar(ctx, issue)

	a.cache.Set(key, result)
	return result, false, nil
}

// findSimilar attaches duplicate candidates. Failures here never fail
// the analysis; the list is simply left empty.
func (a *Analyzer) findSimilar(ctx context.Context, issue *models.Issue) []models.SimilarIssue {
	candidates, err := a.fetcher.ListOpenIssues(ctx, issue.Repo, a.maxIssues)
	if err != nil {
		log.Printf("similar issue lookup for %s failed: %v", issue.Ref(), err)
		return []models.SimilarIssue{}
	}

	similar := a.detector.FindSimilar(ctx, issue, candidates)
	if similar == nil {
		similar = []models.SimilarIssue{}
	}
	return similar
}

// AnalyzeBatch analyzes up to maxBatchSize issues from one repository
// concurrently. Per-issue failures are reported in the corresponding
// item instead of aborting the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, repo string, numbers []int) (*models.BatchResult, error) {
	if len(numbers) == 0 {
		return nil, fmt.Errorf("batch must contain at least one issue number")
	}
	if len(numbers) > maxBatchSize {
		return nil, fmt.Errorf("batch size %d exceeds maximum of %d", len(numbers), maxBatchSize)
	}

	items := make([]models.BatchItem, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.batchPar)

	for i, number := range numbers {
		g.Go(func() error {
			result, _, err := a.Analyze(gctx, repo, number)
			if err != nil {
				items[i] = models.BatchItem{IssueNumber: number, Error: err.Error()}
				return nil
			}
			items[i] = models.BatchItem{IssueNumber: number, Success: true, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &models.BatchResult{
		Repo:    repo,
		Total:   len(items),
		Results: items,
	}
	for _, item := range items {
		if item.Success {
			batch.Successful++
		} else {
			batch.Failed++
		}
	}
	return batch, nil
}

// CacheStats exposes the cache state for diagnostics.
func (a *Analyzer) CacheStats() cache.Stats {
	return a.cache.Stats()
}

// ClearCache drops all cached results and returns how many were held.
func (a *Analyzer) ClearCache() int {
	return a.cache.Clear()
}
