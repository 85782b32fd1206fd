package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// rawAnalysis is the JSON shape the LLM is asked to return
type rawAnalysis struct {
	Summary       string   `json:"summary"`
	RootCause     string   `json:"root_cause"`
	SolutionSteps []string `json:"solution_steps"`
	Checklist     []string `json:"checklist"`
	Labels        []string `json:"labels"`
}

var codeFencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// parseAnalysisJSON parses an LLM response into rawAnalysis, tolerating a
// response wrapped in a markdown code fence.
func parseAnalysisJSON(content string) (*rawAnalysis, error) {
	content = strings.TrimSpace(content)

	if m := codeFencePattern.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	return &raw, nil
}
