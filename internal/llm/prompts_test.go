package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildEvaluationPrompt(t *testing.T) {
	prompt := BuildEvaluationPrompt("Library book update scenario", "UPDATE books SET status = 'damaged';")

	for _, want := range []string{
		"Library book update scenario",
		"UPDATE books SET status = 'damaged';",
		`"score"`,
		`"is_correct"`,
		`"suggestions"`,
		`"business_impact"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("evaluation prompt missing %q", want)
		}
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	prompt := BuildQuestionPrompt("Subqueries", "Write nested queries and correlated subqueries", "medium")

	for _, want := range []string{"Subqueries", "medium", "DO NOT", "Business Scenario"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("question prompt missing %q", want)
		}
	}
}

func TestBuildExamplePrompt(t *testing.T) {
	prompt := BuildExamplePrompt("INNER JOIN", "SELECT ...", "Joins", "Hotel Booking")

	if !strings.Contains(prompt, "INNER JOIN") || !strings.Contains(prompt, "Hotel Booking") {
		t.Errorf("example prompt missing command or scenario:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"sql_example"`) {
		t.Error("example prompt missing JSON structure")
	}
}

func TestMockClientResponses(t *testing.T) {
	mock := NewMockClient()
	ctx := context.Background()

	// Evaluation prompts get parseable JSON with the expected fields.
	raw, err := mock.Generate(ctx, EvaluationSystemPrompt, BuildEvaluationPrompt("ctx", "SELECT 1"), 0.3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var eval struct {
		Score     float64 `json:"score"`
		IsCorrect bool    `json:"is_correct"`
		Feedback  string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &eval); err != nil {
		t.Fatalf("mock evaluation response is not JSON: %v\n%s", err, raw)
	}
	if eval.Feedback == "" {
		t.Error("mock evaluation has empty feedback")
	}

	// Validation prompts get a verdict object.
	raw, err = mock.Generate(ctx, EvaluationSystemPrompt, BuildValidationPrompt("SELECT 1"), 0.1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var verdict struct {
		IsValid bool `json:"is_valid"`
	}
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		t.Fatalf("mock validation response is not JSON: %v\n%s", err, raw)
	}

	// Question prompts get a business scenario document.
	raw, err = mock.Generate(ctx, QuestionSystemPrompt, BuildQuestionPrompt("Subqueries", "desc", "easy"), 0.8)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(raw, "**Business Scenario:**") {
		t.Errorf("mock question response missing scenario header:\n%s", raw)
	}
}
