package similarity

import (
	"context"
	"log"

	"github.com/issuepilot/issuepilot/internal/embedding"
	"github.com/issuepilot/issuepilot/pkg/models"
)

// maxEmbedChars bounds the text sent to embedding providers.
const maxEmbedChars = 8000

// strategy turns a target document and candidate documents into vectors in
// one shared space.
type strategy interface {
	Name() string
	Vectors(ctx context.Context, target string, candidates []string) ([]float64, [][]float64, error)
}

// Detector finds issues similar to a target among a candidate set. It uses
// remote embeddings when a provider is configured and degrades to TF-IDF on
// any embedding failure; that fallback is absorbed locally and never
// surfaces as an error.
type Detector struct {
	embedder  embedding.Provider // nil disables embedding mode
	threshold float64
	limit     int
}

// NewDetector creates a detector. Pass a nil embedder to force TF-IDF mode.
func NewDetector(embedder embedding.Provider, threshold float64, limit int) *Detector {
	return &Detector{
		embedder:  embedder,
		threshold: threshold,
		limit:     limit,
	}
}

// FindSimilar returns candidates similar to target, ranked and truncated.
// The target itself is excluded from the candidate set. Empty candidate
// sets and all-zero vectors yield an empty result, never an error.
func (d *Detector) FindSimilar(ctx context.Context, target *models.Issue, candidates []*models.Issue) []models.SimilarIssue {
	others := make([]*models.Issue, 0, len(candidates))
	for _, c := range candidates {
		if c.Number == target.Number {
			continue
		}
		others = append(others, c)
	}
	if len(others) == 0 {
		return nil
	}

	targetText := CombineIssueText(target.Title, target.Body)
	texts := make([]string, len(others))
	for i, c := range others {
		texts[i] = CombineIssueText(c.Title, c.Body)
	}

	strat := d.pick()
	targetVec, vecs, err := strat.Vectors(ctx, targetText, texts)
	if err != nil {
		log.Printf("%s similarity failed, falling back to tfidf: %v", strat.Name(), err)
		targetVec, vecs, _ = (tfidfStrategy{}).Vectors(ctx, targetText, texts)
	}

	ranked := make([]Candidate, len(others))
	for i, c := range others {
		ranked[i] = Candidate{Issue: c, Vector: vecs[i]}
	}

	return Rank(targetVec, ranked, d.threshold, d.limit)
}

// ExactDuplicate returns the first candidate whose normalized title matches
// the target's exactly, or nil.
func (d *Detector) ExactDuplicate(target *models.Issue, candidates []*models.Issue) *models.Issue {
	title := NormalizeText(target.Title)
	if title == "" {
		return nil
	}

	for _, c := range candidates {
		if c.Number == target.Number {
			continue
		}
		if NormalizeText(c.Title) == title {
			return c
		}
	}
	return nil
}

// pick selects the similarity strategy for one detection call.
func (d *Detector) pick() strategy {
	if d.embedder != nil {
		return embeddingStrategy{provider: d.embedder}
	}
	return tfidfStrategy{}
}

// embeddingStrategy obtains vectors from a remote embedding provider.
type embeddingStrategy struct {
	provider embedding.Provider
}

func (s embeddingStrategy) Name() string { return "embedding" }

func (s embeddingStrategy) Vectors(ctx context.Context, target string, candidates []string) ([]float64, [][]float64, error) {
	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, embedding.Truncate(target, maxEmbedChars))
	for _, t := range candidates {
		texts = append(texts, embedding.Truncate(t, maxEmbedChars))
	}

	raw, err := s.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, nil, err
	}

	vecs := make([][]float64, len(raw))
	for i, v := range raw {
		vecs[i] = toFloat64(v)
	}
	return vecs[0], vecs[1:], nil
}

// tfidfStrategy fits a TF-IDF model over target plus candidates and
// transforms each document into that space. It cannot fail.
type tfidfStrategy struct{}

func (tfidfStrategy) Name() string { return "tfidf" }

func (tfidfStrategy) Vectors(_ context.Context, target string, candidates []string) ([]float64, [][]float64, error) {
	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, target)
	corpus = append(corpus, candidates...)

	model := NewVectorizer().Fit(corpus)

	vecs := make([][]float64, len(candidates))
	for i, t := range candidates {
		vecs[i] = model.Transform(t)
	}
	return model.Transform(target), vecs, nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
