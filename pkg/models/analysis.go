package models

// SimilarIssue represents a similar issue found by the duplicate detector
type SimilarIssue struct {
	IssueNumber int     `json:"issue_number"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Similarity  float64 `json:"similarity"` // 0-1, rounded to 2 decimals
}

// AnalysisResult is the structured output of an issue analysis
type AnalysisResult struct {
	Summary       string         `json:"summary"`
	RootCause     string         `json:"root_cause"`
	SolutionSteps []string       `json:"solution_steps"`
	Checklist     []string       `json:"checklist"`
	Labels        []string       `json:"labels"`
	SimilarIssues []SimilarIssue `json:"similar_issues"`
}

// BatchItem is a single issue result in a batch analysis
type BatchItem struct {
	IssueNumber int             `json:"issue_number"`
	Success     bool            `json:"success"`
	Result      *AnalysisResult `json:"result,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// BatchResult is the outcome of a batch analysis
type BatchResult struct {
	Repo       string      `json:"repo"`
	Total      int         `json:"total"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Results    []BatchItem `json:"results"`
}
