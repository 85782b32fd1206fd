// Package github wraps the GitHub REST API operations the analysis flow
// needs: fetching an issue with comments, listing open issues and checking
// rate limits. All calls go through a shared rate limiter and secondary
// rate-limit responses are retried with exponential backoff.
package github

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when an issue or repository does not exist.
var ErrNotFound = errors.New("resource not found")

// Client wraps GitHub API operations
type Client struct {
	rest       *api.RESTClient
	limiter    *rate.Limiter
	maxRetries int
	baseDelay  time.Duration
}

// Options configures the client
type Options struct {
	Token             string
	RequestsPerSecond int
	MaxRetries        int
}

// NewClient creates a new GitHub client. An empty token falls back to the
// ambient gh authentication (env or gh config); unauthenticated access works
// but with tight rate limits.
func NewClient(opts Options) (*Client, error) {
	var rest *api.RESTClient
	var err error

	if opts.Token != "" {
		rest, err = api.NewRESTClient(api.ClientOptions{AuthToken: opts.Token})
	} else {
		rest, err = api.DefaultRESTClient()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	retries := opts.MaxRetries
	if retries <= 0 {
		retries = 3
	}

	return &Client{
		rest:       rest,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		maxRetries: retries,
		baseDelay:  time.Second,
	}, nil
}

// Close releases resources
func (c *Client) Close() error {
	return nil
}

// ParseRepo splits "owner/repo" into owner and repo
func ParseRepo(fullRepo string) (string, string, error) {
	parts := strings.Split(fullRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", fullRepo)
	}
	return parts[0], parts[1], nil
}

// get performs a GET with rate limiting and backoff on secondary limits.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		err := c.rest.DoWithContext(ctx, http.MethodGet, endpoint, nil, out)
		if err == nil {
			return nil
		}

		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("%s: %w", endpoint, ErrNotFound)
			case http.StatusForbidden, http.StatusTooManyRequests:
				if attempt < c.maxRetries {
					delay := c.baseDelay * (1 << attempt)
					log.Printf("GitHub rate limit hit, retry %d/%d in %s", attempt+1, c.maxRetries, delay)
					select {
					case <-time.After(delay):
						lastErr = err
						continue
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		}

		return fmt.Errorf("github request failed: %w", err)
	}

	return fmt.Errorf("github request failed after %d retries: %w", c.maxRetries, lastErr)
}

// sanitize strips control characters GitHub occasionally lets through.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
