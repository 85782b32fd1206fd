package analysis

import "strings"

// TruncateText truncates text to at most maxLen characters plus an ellipsis,
// cutting at a word boundary when one is close enough.
func TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > maxLen/2 {
		cut = cut[:idx]
	}

	return cut + "..."
}
