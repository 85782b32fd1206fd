package analysis

import (
	"strings"
	"testing"

	"github.com/issuepilot/issuepilot/pkg/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Summary:       "OAuth login fails.",
		RootCause:     "Clock skew breaks token validation.",
		SolutionSteps: []string{"Reproduce", "Fix expiry leeway"},
		Checklist:     []string{"Read issue", "Write test"},
		Labels:        []string{"bug", "help-wanted"},
		SimilarIssues: []models.SimilarIssue{
			{IssueNumber: 7, Title: "Token rejected", URL: "https://example.com/7", Similarity: 0.91},
		},
	}
}

func TestExportMarkdown(t *testing.T) {
	md := ExportMarkdown(sampleResult(), "owner/repo", 42)

	for _, want := range []string{
		"# 🔍 Issue Analysis Report",
		"**Repository:** owner/repo",
		"**Issue:** #42",
		"## 📋 Summary",
		"OAuth login fails.",
		"## 🔎 Root Cause",
		"1. Reproduce",
		"2. Fix expiry leeway",
		"- [ ] Read issue",
		"`bug`, `help-wanted`",
		"| [#7](https://example.com/7) | Token rejected | 91% |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExportMarkdownWithoutHeader(t *testing.T) {
	md := ExportMarkdown(sampleResult(), "", 0)

	if strings.Contains(md, "**Repository:**") {
		t.Error("repository line should be omitted without a repo")
	}
	if !strings.Contains(md, "## 📋 Summary") {
		t.Error("summary section missing")
	}
}

func TestExportMarkdownNoSimilarIssues(t *testing.T) {
	result := sampleResult()
	result.SimilarIssues = nil

	md := ExportMarkdown(result, "owner/repo", 42)
	if strings.Contains(md, "Similar Issues") {
		t.Error("similar issues section should be omitted when empty")
	}
}
