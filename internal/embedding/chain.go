package embedding

import (
	"context"
	"log"

	"golang.org/x/time/rate"
)

// Chain tries the primary provider first and falls back to the secondary on
// failure. If both fail the caller sees the fallback's error and is expected
// to degrade to TF-IDF similarity.
type Chain struct {
	primary  Provider
	fallback Provider
}

// Embed generates an embedding with fallback on failure
func (c *Chain) Embed(ctx context.Context, text string) ([]float32, error) {
	embedding, err := c.primary.Embed(ctx, text)
	if err == nil {
		return embedding, nil
	}

	log.Printf("primary embedding failed, trying fallback: %v", err)
	return c.fallback.Embed(ctx, text)
}

// EmbedBatch generates embeddings for multiple texts with fallback
func (c *Chain) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings, err := c.primary.EmbedBatch(ctx, texts)
	if err == nil {
		return embeddings, nil
	}

	log.Printf("primary batch embedding failed, trying fallback: %v", err)
	return c.fallback.EmbedBatch(ctx, texts)
}

// Close releases resources of both providers
func (c *Chain) Close() error {
	err := c.primary.Close()
	if ferr := c.fallback.Close(); err == nil {
		err = ferr
	}
	return err
}

// limited wraps a provider with a request rate limit.
type limited struct {
	inner   Provider
	limiter *rate.Limiter
}

// Limit caps calls to p at rps requests per second.
func Limit(p Provider, rps int) Provider {
	return &limited{
		inner:   p,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (l *limited) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.Embed(ctx, text)
}

func (l *limited) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.EmbedBatch(ctx, texts)
}

func (l *limited) Close() error {
	return l.inner.Close()
}
