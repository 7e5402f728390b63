package practice

import (
	"regexp"
	"testing"
)

func TestMintQuestionID(t *testing.T) {
	idPattern := regexp.MustCompile(`^4_medium_[1-9][0-9]{3}$`)
	for i := 0; i < 20; i++ {
		qid := mintQuestionID(4, "medium")
		if !idPattern.MatchString(qid) {
			t.Errorf("mintQuestionID = %q, want <module>_<difficulty>_<1000-9999>", qid)
		}
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare json", `{"is_valid": true}`, `{"is_valid": true}`},
		{"json fence", "```json\n{\"is_valid\": true}\n```", `{"is_valid": true}`},
		{"plain fence", "```\n{\"is_valid\": false}\n```", `{"is_valid": false}`},
		{"fence with prose", "Sure!\n```json\n{\"is_valid\": true}\n```\nDone.", `{"is_valid": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
