package analysis

import (
	"strings"
	"testing"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"shorter than limit", "hello world", 50, "hello world"},
		{"exactly at limit", "hello", 5, "hello"},
		{"cut at word boundary", "hello wonderful world", 15, "hello wonderful..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateTextNoSpaceNearBoundary(t *testing.T) {
	// No space in the second half of the cut: hard truncate.
	text := "abcdefghijklmnopqrstuvwxyz"
	got := TruncateText(text, 10)
	if got != "abcdefghij..." {
		t.Errorf("TruncateText = %q, want %q", got, "abcdefghij...")
	}
}

func TestTruncateTextAlwaysBounded(t *testing.T) {
	text := strings.Repeat("lorem ipsum ", 100)
	got := TruncateText(text, 50)
	if len(got) > 50+len("...") {
		t.Errorf("result length %d exceeds limit", len(got))
	}
}
