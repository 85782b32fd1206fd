package github

import (
	"context"
	"fmt"
	"time"
)

// RateLimitInfo reports the core API rate limit state.
type RateLimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

// RateLimit fetches the current core API rate limit status.
func (c *Client) RateLimit(ctx context.Context) (*RateLimitInfo, error) {
	var resp rateLimitResponse
	if err := c.get(ctx, "rate_limit", &resp); err != nil {
		return nil, fmt.Errorf("failed to get rate limit: %w", err)
	}

	return &RateLimitInfo{
		Limit:     resp.Resources.Core.Limit,
		Remaining: resp.Resources.Core.Remaining,
		ResetAt:   time.Unix(resp.Resources.Core.Reset, 0).UTC(),
	}, nil
}
