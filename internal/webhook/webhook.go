package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/issuepilot/issuepilot/internal/config"
)

// Payload is the subset of the GitHub issues event we act on.
type Payload struct {
	Action     string     `json:"action"`
	Issue      Issue      `json:"issue"`
	Repository Repository `json:"repository"`
	Sender     Sender     `json:"sender"`
	Label      *Label     `json:"label,omitempty"`
}

// Issue carries the fields needed for gating decisions.
type Issue struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	State  string  `json:"state"`
	Labels []Label `json:"labels"`
}

// Repository identifies the source repository.
type Repository struct {
	FullName string `json:"full_name"`
}

// Sender identifies who triggered the event.
type Sender struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

// Label is a GitHub issue label.
type Label struct {
	Name string `json:"name"`
}

// Parse decodes a webhook request body.
func Parse(body []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if p.Repository.FullName == "" {
		return nil, fmt.Errorf("webhook payload missing repository")
	}
	return &p, nil
}

// VerifySignature checks the X-Hub-Signature-256 header against the
// request body. When no secret is configured, verification is skipped.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" {
		return true
	}
	if !strings.HasPrefix(signature, "sha256=") {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// ShouldAnalyze decides whether an event warrants triggering analysis.
func ShouldAnalyze(cfg *config.WebhookConfig, p *Payload) (bool, string) {
	switch p.Action {
	case "opened":
		if !cfg.OnOpen() {
			return false, "analysis on opened issues is disabled"
		}
	case "edited":
		if !cfg.AnalyzeOnEdit {
			return false, "analysis on edited issues is disabled"
		}
	case "labeled":
		if !cfg.AnalyzeOnLabel {
			return false, "analysis on labeled issues is disabled"
		}
	default:
		return false, fmt.Sprintf("action %q is not handled", p.Action)
	}

	if p.Issue.State != "" && p.Issue.State != "open" {
		return false, "issue is not open"
	}

	labels := make(map[string]bool, len(p.Issue.Labels))
	for _, l := range p.Issue.Labels {
		labels[strings.ToLower(l.Name)] = true
	}

	for _, excluded := range cfg.ExcludedLabels {
		if labels[strings.ToLower(excluded)] {
			return false, fmt.Sprintf("issue carries excluded label %q", excluded)
		}
	}

	if cfg.RequiredLabel != "" && !labels[strings.ToLower(cfg.RequiredLabel)] {
		return false, fmt.Sprintf("issue is missing required label %q", cfg.RequiredLabel)
	}

	return true, ""
}
