// Package analysis turns a GitHub issue into a structured triage report
// using an LLM provider.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/issuepilot/issuepilot/internal/llm"
	"github.com/issuepilot/issuepilot/pkg/models"
)

const systemPrompt = `You are a senior open-source maintainer with extensive experience in triaging and resolving GitHub issues. Your task is to analyze GitHub issues and provide:
1. Clear, concise summaries
2. Accurate root cause analysis
3. Actionable solution steps
4. Developer-friendly checklists
5. Appropriate label suggestions

Always be precise, helpful, and consider the contributor's perspective. Focus on making issues easier to understand and resolve.`

const userPromptTemplate = `Analyze the following GitHub issue and provide a structured analysis.

## Issue Title
%s

## Issue Body
%s

## Top Comments
%s

## Task
Analyze this issue and return a JSON object with the following structure:
{
    "summary": "A clear 4-6 line summary of what this issue is about",
    "root_cause": "Your analysis of the likely root cause of this issue",
    "solution_steps": [
        "Step 1: ...",
        "Step 2: ...",
        "Step 3: ..."
    ],
    "checklist": [
        "Understand the issue context",
        "Set up development environment",
        "...",
        "..."
    ],
    "labels": ["bug", "enhancement"]
}

Guidelines:
- Summary should be comprehensive but concise (4-6 lines)
- Root cause should be specific and technical
- Solution steps should be actionable and ordered (minimum 3 steps)
- Checklist should have 6-10 items for a developer to follow
- Labels must be from: bug, docs, enhancement, feature, question, good-first-issue, help-wanted, invalid, wontfix

Return ONLY valid JSON, no additional text.`

// validLabels is the whitelist of labels the engine may suggest.
var validLabels = map[string]struct{}{
	"bug":              {},
	"docs":             {},
	"enhancement":      {},
	"feature":          {},
	"question":         {},
	"good-first-issue": {},
	"help-wanted":      {},
	"invalid":          {},
	"wontfix":          {},
}

const (
	maxBodyChars    = 3000
	maxCommentChars = 500
	maxComments     = 5
)

// Engine produces issue analyses via an LLM provider
type Engine struct {
	provider llm.Provider
}

// NewEngine creates an analysis engine
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

// Analyze runs the LLM over the issue and returns a validated result.
// Similar issues are attached by the caller, not here.
func (e *Engine) Analyze(ctx context.Context, issue *models.Issue) (*models.AnalysisResult, error) {
	prompt := buildPrompt(issue)

	content, err := e.provider.CompleteWithSystem(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis completion failed: %w", err)
	}

	raw, err := parseAnalysisJSON(content)
	if err != nil {
		return nil, err
	}

	return normalize(raw), nil
}

// buildPrompt formats the user prompt from issue data
func buildPrompt(issue *models.Issue) string {
	body := issue.Body
	if body == "" {
		body = "No description provided."
	}
	body = TruncateText(body, maxBodyChars)

	comments := "No comments yet."
	if len(issue.Comments) > 0 {
		var sb strings.Builder
		for i, comment := range issue.Comments {
			if i >= maxComments {
				break
			}
			if i > 0 {
				sb.WriteString("\n\n")
			}
			fmt.Fprintf(&sb, "Comment %d:\n%s", i+1, TruncateText(comment, maxCommentChars))
		}
		comments = sb.String()
	}

	return fmt.Sprintf(userPromptTemplate, issue.Title, body, comments)
}

// normalize fills missing fields with safe defaults and enforces the label
// whitelist, mirroring how lenient the analysis flow is with model output.
func normalize(raw *rawAnalysis) *models.AnalysisResult {
	summary := raw.Summary
	if summary == "" {
		summary = "Unable to generate summary."
	}

	rootCause := raw.RootCause
	if rootCause == "" {
		rootCause = "Unable to determine root cause."
	}

	steps := raw.SolutionSteps
	if len(steps) == 0 {
		steps = []string{
			"Review the issue description",
			"Investigate the codebase",
			"Implement a fix",
		}
	}

	checklist := raw.Checklist
	if len(checklist) == 0 {
		checklist = []string{
			"Read and understand the issue",
			"Set up local development environment",
			"Reproduce the issue locally",
			"Identify affected files",
			"Implement the fix",
			"Write tests",
			"Submit PR",
		}
	}

	labels := make([]string, 0, len(raw.Labels))
	for _, l := range raw.Labels {
		if _, ok := validLabels[l]; ok {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		labels = []string{"bug"}
	}

	return &models.AnalysisResult{
		Summary:       summary,
		RootCause:     rootCause,
		SolutionSteps: steps,
		Checklist:     checklist,
		Labels:        labels,
		SimilarIssues: []models.SimilarIssue{},
	}
}
