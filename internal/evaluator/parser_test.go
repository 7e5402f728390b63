package evaluator

import (
	"strings"
	"testing"
)

func TestParseLLMEvaluationBareJSON(t *testing.T) {
	raw := `{"score": 85, "is_correct": true, "feedback": "Nice work", "suggestions": ["Add a semicolon"], "business_impact": "Accurate reporting"}`

	result, err := ParseLLMEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
	if !result.IsCorrect {
		t.Error("IsCorrect = false, want true")
	}
	if result.Feedback != "Nice work" {
		t.Errorf("Feedback = %q, want %q", result.Feedback, "Nice work")
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "Add a semicolon" {
		t.Errorf("Suggestions = %v", result.Suggestions)
	}
}

func TestParseLLMEvaluationFencedJSON(t *testing.T) {
	raw := "Here is my evaluation:\n```json\n{\"score\": 72.5, \"is_correct\": false, \"feedback\": \"Missing WHERE clause\"}\n```\nHope that helps!"

	result, err := ParseLLMEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 72 {
		t.Errorf("Score = %d, want 72 (truncated float)", result.Score)
	}
	if result.IsCorrect {
		t.Error("IsCorrect = true, want false")
	}
}

func TestParseLLMEvaluationPlainFences(t *testing.T) {
	raw := "```\n{\"score\": 90, \"is_correct\": true, \"feedback\": \"Good\"}\n```"

	result, err := ParseLLMEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 90 {
		t.Errorf("Score = %d, want 90", result.Score)
	}
}

func TestParseLLMEvaluationSalvage(t *testing.T) {
	// Trailing comma makes strict decoding fail; field extraction should
	// still recover score and feedback.
	raw := `{"score": 60, "is_correct": false, "feedback": "Check your joins", "suggestions": ["Use INNER JOIN"],}`

	result, err := ParseLLMEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 60 {
		t.Errorf("Score = %d, want 60", result.Score)
	}
	if result.Feedback != "Check your joins" {
		t.Errorf("Feedback = %q", result.Feedback)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "Use INNER JOIN" {
		t.Errorf("Suggestions = %v", result.Suggestions)
	}
}

func TestParseLLMEvaluationClampsScore(t *testing.T) {
	result, err := ParseLLMEvaluation(`{"score": 150, "is_correct": true, "feedback": "Over-enthusiastic grader"}`)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}

	result, err = ParseLLMEvaluation(`{"score": -10, "is_correct": false, "feedback": "Harsh grader"}`)
	if err != nil {
		t.Fatalf("ParseLLMEvaluation error: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
}

func TestParseLLMEvaluationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose only", "I think this query looks fine overall."},
		{"empty string", ""},
		{"missing feedback", `{"score": 80, "is_correct": true}`},
		{"empty feedback", `{"score": 80, "is_correct": true, "feedback": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLLMEvaluation(tt.raw); err == nil {
				t.Errorf("ParseLLMEvaluation(%q) succeeded, want error", tt.raw)
			}
		})
	}
}

func TestExtractJSONBlock(t *testing.T) {
	got := extractJSONBlock("prefix\n```json\n{\"a\": 1}\n```\nsuffix")
	if got != `{"a": 1}` {
		t.Errorf("extractJSONBlock = %q", got)
	}

	got = extractJSONBlock(`{"a": 1}`)
	if got != `{"a": 1}` {
		t.Errorf("extractJSONBlock passthrough = %q", got)
	}

	got = extractJSONBlock("```\n{\"a\": 1}\n```")
	if strings.Contains(got, "```") {
		t.Errorf("fences not stripped: %q", got)
	}
}
