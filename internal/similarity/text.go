package similarity

import (
	"regexp"
	"strings"
)

var (
	codeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	nonWordPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
)

// NormalizeText prepares raw issue text for comparison: lowercase, code
// blocks and URLs removed, punctuation stripped, whitespace collapsed.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = codeBlockPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, " ")
	text = nonWordPattern.ReplaceAllString(text, " ")

	return strings.Join(strings.Fields(text), " ")
}

// CombineIssueText merges title and body into one comparison document.
// The title appears twice so it carries more weight than the body.
func CombineIssueText(title, body string) string {
	return NormalizeText(title + " " + title + " " + body)
}
