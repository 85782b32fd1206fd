package cache

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		repo   string
		number int
		want   string
	}{
		{"facebook/react", 123, "facebook/react#123"},
		{"vercel/next.js", 1, "vercel/next.js#1"},
		{"owner-name/repo-name", 9999, "owner-name/repo-name#9999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Key(tt.repo, tt.number); got != tt.want {
				t.Errorf("Key(%q, %d) = %q, want %q", tt.repo, tt.number, got, tt.want)
			}
		})
	}
}

func TestKeyStable(t *testing.T) {
	if Key("owner/repo", 42) != Key("owner/repo", 42) {
		t.Error("Key is not stable for identical inputs")
	}
	if Key("owner/repo", 42) == Key("owner/repo", 421) {
		t.Error("distinct issue numbers produced the same key")
	}
	if Key("owner/repo1", 2) == Key("owner/repo", 12) {
		t.Error("distinct (repo, number) pairs collided")
	}
}
