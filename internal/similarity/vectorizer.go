package similarity

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer builds TF-IDF models over a corpus. It is the fallback
// similarity mode when no embedding provider is available.
type Vectorizer struct {
	stopwords map[string]struct{}
}

// Model is a fitted vocabulary with per-term IDF weights. Vectors produced
// by the same Model share a vector space and can be compared directly.
type Model struct {
	vocab     map[string]int
	idf       []float64
	stopwords map[string]struct{}
}

// NewVectorizer creates a vectorizer with the default English stopword list.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{stopwords: defaultStopwords()}
}

// Fit builds the vocabulary and IDF values from the corpus. An empty corpus
// yields a model with an empty vocabulary whose transforms are zero vectors.
func (v *Vectorizer) Fit(corpus []string) *Model {
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Sorted terms give every fit over the same corpus the same dimension order.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &Model{
		vocab:     make(map[string]int, len(terms)),
		idf:       make([]float64, len(terms)),
		stopwords: v.stopwords,
	}

	n := float64(len(corpus))
	for i, term := range terms {
		m.vocab[term] = i
		// Smoothed IDF so corpus-wide terms still carry weight.
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	return m
}

// Transform computes the L2-normalized TF-IDF vector for text. Text with no
// in-vocabulary tokens yields a zero vector.
func (m *Model) Transform(text string) []float64 {
	vec := make([]float64, len(m.idf))

	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text, m.stopwords) {
		if idx, ok := m.vocab[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * m.idf[idx]
	}

	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// VocabSize returns the fitted vocabulary size.
func (m *Model) VocabSize() int {
	return len(m.vocab)
}

func (v *Vectorizer) tokenize(text string) []string {
	return tokenize(text, v.stopwords)
}

// tokenize lowercases, strips punctuation and splits on whitespace,
// dropping stopwords.
func tokenize(text string, stopwords map[string]struct{}) []string {
	fields := strings.Fields(NormalizeText(text))
	out := fields[:0]
	for _, tok := range fields {
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
		"were", "be", "been", "being", "it", "this", "that", "these", "those",
		"from", "up", "down", "over", "under", "again", "further", "than",
		"so", "such", "into", "about", "between", "through", "during",
		"before", "after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
