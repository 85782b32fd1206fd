package similarity

import (
	"math"
	"sort"

	"github.com/issuepilot/issuepilot/pkg/models"
)

// Candidate pairs an issue with its vector in the comparison space.
type Candidate struct {
	Issue  *models.Issue
	Vector []float64
}

// Rank scores candidates against target by cosine similarity, keeps those
// at or above threshold, orders by similarity descending (ties broken by
// ascending issue number) and truncates to limit. A non-positive limit
// means no truncation. Pure function: no I/O, no mutation of its inputs.
func Rank(target []float64, candidates []Candidate, threshold float64, limit int) []models.SimilarIssue {
	type scored struct {
		issue *models.Issue
		score float64
	}

	kept := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := Cosine(target, c.Vector)
		if score >= threshold {
			kept = append(kept, scored{issue: c.Issue, score: score})
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].issue.Number < kept[j].issue.Number
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	results := make([]models.SimilarIssue, len(kept))
	for i, s := range kept {
		results[i] = models.SimilarIssue{
			IssueNumber: s.issue.Number,
			Title:       s.issue.Title,
			URL:         s.issue.URL,
			Similarity:  math.Round(s.score*100) / 100,
		}
	}

	return results
}

// Cosine computes the cosine similarity of two vectors, clamped to [0,1].
// A zero-magnitude vector (or mismatched dimensions) yields 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
