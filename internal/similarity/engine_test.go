package similarity

import (
	"math"
	"testing"

	"github.com/issuepilot/issuepilot/pkg/models"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite clamped to zero", []float64{1, 0}, []float64{-1, 0}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
		{"dimension mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
		{"scaled is identical", []float64{1, 2}, []float64{10, 20}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func candidate(number int, title string, vec []float64) Candidate {
	return Candidate{
		Issue:  &models.Issue{Number: number, Title: title, URL: "https://example.com/" + title},
		Vector: vec,
	}
}

func TestRankOrdering(t *testing.T) {
	target := []float64{1, 0, 0}
	candidates := []Candidate{
		candidate(10, "weak", []float64{0.5, 0.86, 0}),
		candidate(20, "strong", []float64{0.99, 0.05, 0}),
		candidate(30, "medium", []float64{0.8, 0.6, 0}),
	}

	got := Rank(target, candidates, 0.0, 0)
	if len(got) != 3 {
		t.Fatalf("Rank returned %d results, want 3", len(got))
	}
	if got[0].IssueNumber != 20 || got[1].IssueNumber != 30 || got[2].IssueNumber != 10 {
		t.Errorf("order = %d,%d,%d; want 20,30,10", got[0].IssueNumber, got[1].IssueNumber, got[2].IssueNumber)
	}
}

func TestRankTieBreakByIssueNumber(t *testing.T) {
	target := []float64{1, 0}
	vec := []float64{1, 0}
	candidates := []Candidate{
		candidate(42, "later", vec),
		candidate(7, "earlier", vec),
	}

	got := Rank(target, candidates, 0.0, 0)
	if got[0].IssueNumber != 7 {
		t.Errorf("tie should break to lower issue number, got #%d first", got[0].IssueNumber)
	}
}

func TestRankThreshold(t *testing.T) {
	target := []float64{1, 0}
	candidates := []Candidate{
		candidate(1, "above", []float64{1, 0}),       // 1.0
		candidate(2, "below", []float64{0.5, 0.866}), // ~0.5
		candidate(3, "zero", []float64{0, 1}),        // 0.0
	}

	got := Rank(target, candidates, 0.75, 0)
	if len(got) != 1 || got[0].IssueNumber != 1 {
		t.Fatalf("Rank with threshold 0.75 = %v, want only issue 1", got)
	}
}

func TestRankThresholdIsInclusive(t *testing.T) {
	target := []float64{1, 0}
	candidates := []Candidate{candidate(1, "exact", []float64{1, 0})}

	if got := Rank(target, candidates, 1.0, 0); len(got) != 1 {
		t.Errorf("score exactly at threshold should be kept, got %v", got)
	}
}

func TestRankLimit(t *testing.T) {
	target := []float64{1, 0}
	candidates := []Candidate{
		candidate(1, "a", []float64{1, 0}),
		candidate(2, "b", []float64{0.9, 0.1}),
		candidate(3, "c", []float64{0.8, 0.2}),
		candidate(4, "d", []float64{0.7, 0.3}),
	}

	got := Rank(target, candidates, 0.0, 3)
	if len(got) != 3 {
		t.Fatalf("Rank with limit 3 returned %d results", len(got))
	}
}

func TestRankRoundsToTwoDecimals(t *testing.T) {
	target := []float64{1, 0}
	candidates := []Candidate{candidate(1, "a", []float64{0.9, 0.4359})}

	got := Rank(target, candidates, 0.0, 0)
	if len(got) != 1 {
		t.Fatal("expected one result")
	}
	rounded := got[0].Similarity * 100
	if rounded != math.Trunc(rounded) {
		t.Errorf("similarity %v not rounded to 2 decimals", got[0].Similarity)
	}
}

func TestRankZeroVectorTarget(t *testing.T) {
	target := []float64{0, 0}
	candidates := []Candidate{candidate(1, "a", []float64{1, 0})}

	if got := Rank(target, candidates, 0.1, 0); len(got) != 0 {
		t.Errorf("zero target should match nothing, got %v", got)
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	if got := Rank([]float64{1}, nil, 0.5, 3); len(got) != 0 {
		t.Errorf("Rank(nil candidates) = %v, want empty", got)
	}
}
