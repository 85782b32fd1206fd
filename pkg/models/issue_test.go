package models

import (
	"testing"
)

func TestIssueUUID(t *testing.T) {
	tests := []struct {
		repo   string
		number int
	}{
		{"myorg/myrepo", 123},
		{"other/repo", 456},
		{"test/test", 1},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			// UUID should be deterministic
			uuid1 := IssueUUID(tt.repo, tt.number)
			uuid2 := IssueUUID(tt.repo, tt.number)

			if uuid1 != uuid2 {
				t.Errorf("IssueUUID not deterministic: %v != %v", uuid1, uuid2)
			}

			if len(uuid1) != 36 {
				t.Errorf("IssueUUID invalid length: %d", len(uuid1))
			}
		})
	}

	if IssueUUID("myorg/myrepo", 123) == IssueUUID("myorg/myrepo", 124) {
		t.Error("different issues produced the same UUID")
	}
}

func TestIssue_Ref(t *testing.T) {
	issue := &Issue{
		Repo:   "myorg/myrepo",
		Number: 42,
	}

	if issue.Ref() != "myorg/myrepo#42" {
		t.Errorf("Ref() = %v, want myorg/myrepo#42", issue.Ref())
	}
}

func TestIssue_BodyHash(t *testing.T) {
	issue := &Issue{Body: "test body content"}

	hash1 := issue.BodyHash()
	hash2 := issue.BodyHash()

	if hash1 != hash2 {
		t.Errorf("BodyHash not deterministic")
	}

	if len(hash1) != 64 {
		t.Errorf("BodyHash invalid length: %d", len(hash1))
	}

	issue.Body = "different body"
	if hash1 == issue.BodyHash() {
		t.Errorf("Different body produced same hash")
	}
}
