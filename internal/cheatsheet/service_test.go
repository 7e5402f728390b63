package cheatsheet

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sql-tutor/backend/internal/models"
)

func TestFallbackExampleWithRawResponse(t *testing.T) {
	req := models.DynamicExampleRequest{Command: "SELECT", Syntax: "SELECT * FROM t;"}
	long := strings.Repeat("x", 250)

	example := fallbackExample(req, "Banking System", long)

	if example.Scenario != "Banking System" {
		t.Errorf("Scenario = %q", example.Scenario)
	}
	if len(example.Explanation) != 203 || !strings.HasSuffix(example.Explanation, "...") {
		t.Errorf("Explanation not truncated to 200 chars plus ellipsis: len=%d", len(example.Explanation))
	}
}

func TestFallbackExampleTruncatesOnRuneBoundary(t *testing.T) {
	req := models.DynamicExampleRequest{Command: "SELECT"}
	long := strings.Repeat("é", 250)

	example := fallbackExample(req, "Café Chain", long)

	if !utf8.ValidString(example.Explanation) {
		t.Error("truncated explanation is not valid UTF-8")
	}
	if !strings.HasSuffix(example.Explanation, "...") {
		t.Errorf("Explanation = %q, want ellipsis suffix", example.Explanation)
	}
	if got := utf8.RuneCountInString(example.Explanation); got != 203 {
		t.Errorf("rune count = %d, want 200 plus ellipsis", got)
	}
}

func TestFallbackExampleWithoutResponse(t *testing.T) {
	req := models.DynamicExampleRequest{Command: "GROUP BY", Syntax: "SELECT c, COUNT(*) FROM t GROUP BY c;"}

	example := fallbackExample(req, "Fitness Center", "")

	if example.SQLExample != req.Syntax {
		t.Errorf("SQLExample = %q, want the provided syntax", example.SQLExample)
	}
	if !strings.Contains(example.Explanation, "GROUP BY") {
		t.Errorf("Explanation = %q, missing command", example.Explanation)
	}

	// No syntax supplied either.
	example = fallbackExample(models.DynamicExampleRequest{Command: "DELETE"}, "Travel Agency", "")
	if example.SQLExample != "DELETE query example" {
		t.Errorf("SQLExample = %q", example.SQLExample)
	}
}
