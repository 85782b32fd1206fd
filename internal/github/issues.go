package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/issuepilot/issuepilot/pkg/models"
)

// apiIssue represents a GitHub issue from the API
type apiIssue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	State     string     `json:"state"`
	HTMLURL   string     `json:"html_url"`
	User      apiUser    `json:"user"`
	Labels    []apiLabel `json:"labels"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	// Present only when the "issue" is actually a pull request.
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

// apiUser represents a GitHub user
type apiUser struct {
	Login string `json:"login"`
}

// apiLabel represents a GitHub label
type apiLabel struct {
	Name string `json:"name"`
}

// apiComment represents a GitHub comment
type apiComment struct {
	ID        int       `json:"id"`
	Body      string    `json:"body"`
	User      apiUser   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *apiIssue) isPullRequest() bool {
	return i.PullRequest != nil
}

// toModel converts an API issue to the domain model
func (i *apiIssue) toModel(repo string) *models.Issue {
	labels := make([]string, len(i.Labels))
	for j, l := range i.Labels {
		labels[j] = l.Name
	}

	return &models.Issue{
		Repo:      repo,
		Number:    i.Number,
		Title:     sanitize(i.Title),
		Body:      sanitize(i.Body),
		State:     i.State,
		Labels:    labels,
		Author:    i.User.Login,
		URL:       i.HTMLURL,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// GetIssue fetches a single issue along with its first comments.
func (c *Client) GetIssue(ctx context.Context, repo string, number int) (*models.Issue, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d", owner, name, number)

	var ai apiIssue
	if err := c.get(ctx, endpoint, &ai); err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	issue := ai.toModel(repo)

	comments, err := c.ListComments(ctx, repo, number, 5)
	if err != nil {
		// Comments are supplementary; analysis proceeds without them.
		return issue, nil
	}
	issue.Comments = comments

	return issue, nil
}

// ListComments fetches up to max comment bodies for an issue.
func (c *Client) ListComments(ctx context.Context, repo string, number, max int) ([]string, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(max))
	endpoint := fmt.Sprintf("repos/%s/%s/issues/%d/comments?%s", owner, name, number, params.Encode())

	var comments []apiComment
	if err := c.get(ctx, endpoint, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	bodies := make([]string, 0, len(comments))
	for _, comment := range comments {
		bodies = append(bodies, sanitize(comment.Body))
	}
	return bodies, nil
}

// ListOpenIssues fetches up to max open issues for duplicate detection.
// Pull requests are filtered out.
func (c *Client) ListOpenIssues(ctx context.Context, repo string, max int) ([]*models.Issue, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}

	var all []*models.Issue
	page := 1
	perPage := 100
	if max < perPage {
		perPage = max
	}

	for len(all) < max {
		params := url.Values{}
		params.Set("state", "open")
		params.Set("per_page", strconv.Itoa(perPage))
		params.Set("page", strconv.Itoa(page))

		endpoint := fmt.Sprintf("repos/%s/%s/issues?%s", owner, name, params.Encode())

		var issues []apiIssue
		if err := c.get(ctx, endpoint, &issues); err != nil {
			return nil, fmt.Errorf("failed to list issues: %w", err)
		}

		if len(issues) == 0 {
			break
		}

		for i := range issues {
			if issues[i].isPullRequest() {
				continue
			}
			all = append(all, issues[i].toModel(repo))
		}

		if len(issues) < perPage {
			break
		}
		page++
	}

	if len(all) > max {
		all = all[:max]
	}
	return all, nil
}
