package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/issuepilot/issuepilot/pkg/models"
)

// ExportMarkdown renders an analysis result as a shareable markdown report.
// Repo and issueNumber are optional; pass "" and 0 to omit the header line.
func ExportMarkdown(result *models.AnalysisResult, repo string, issueNumber int) string {
	var sb strings.Builder

	sb.WriteString("# 🔍 Issue Analysis Report\n\n")

	if repo != "" && issueNumber > 0 {
		fmt.Fprintf(&sb, "**Repository:** %s\n", repo)
		fmt.Fprintf(&sb, "**Issue:** #%d\n", issueNumber)
	}
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", time.Now().UTC().Format("2006-01-02 15:04 UTC"))

	sb.WriteString("## 📋 Summary\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	sb.WriteString("## 🔎 Root Cause\n\n")
	sb.WriteString(result.RootCause)
	sb.WriteString("\n\n")

	sb.WriteString("## 🛠️ Solution Steps\n\n")
	for i, step := range result.SolutionSteps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	sb.WriteString("\n")

	sb.WriteString("## ✅ Developer Checklist\n\n")
	for _, item := range result.Checklist {
		fmt.Fprintf(&sb, "- [ ] %s\n", item)
	}
	sb.WriteString("\n")

	sb.WriteString("## 🏷️ Suggested Labels\n\n")
	labels := make([]string, len(result.Labels))
	for i, l := range result.Labels {
		labels[i] = "`" + l + "`"
	}
	sb.WriteString(strings.Join(labels, ", "))
	sb.WriteString("\n")

	if len(result.SimilarIssues) > 0 {
		sb.WriteString("\n## 🔗 Similar Issues\n\n")
		sb.WriteString("| Issue | Title | Similarity |\n")
		sb.WriteString("|-------|-------|------------|\n")
		for _, si := range result.SimilarIssues {
			fmt.Fprintf(&sb, "| [#%d](%s) | %s | %.0f%% |\n",
				si.IssueNumber, si.URL, si.Title, si.Similarity*100)
		}
	}

	return sb.String()
}
