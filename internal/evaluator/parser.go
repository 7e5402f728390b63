package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/sql-tutor/backend/internal/models"
)

// llmEvaluation is the wire shape the evaluation prompt asks the model
// for. Score tolerates both integer and float responses.
type llmEvaluation struct {
	Score          float64  `json:"score"`
	IsCorrect      bool     `json:"is_correct"`
	Feedback       string   `json:"feedback"`
	Suggestions    []string `json:"suggestions"`
	BusinessImpact string   `json:"business_impact"`
}

// ParseLLMEvaluation extracts a structured result from a raw model
// response. Two shapes are supported: JSON wrapped in a fenced code
// block, and bare JSON. When strict decoding fails it falls back to a
// tolerant field extraction before giving up; callers treat any error
// as "use local synthesis instead".
func ParseLLMEvaluation(raw string) (*models.EvaluationResult, error) {
	cleaned := extractJSONBlock(raw)

	var eval llmEvaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		salvaged, ok := salvageEvaluation(cleaned)
		if !ok {
			return nil, fmt.Errorf("parse LLM evaluation: %w", err)
		}
		eval = *salvaged
	}

	if eval.Feedback == "" {
		return nil, fmt.Errorf("parse LLM evaluation: missing feedback")
	}

	return &models.EvaluationResult{
		Score:          clampScore(int(eval.Score)),
		IsCorrect:      eval.IsCorrect,
		Feedback:       eval.Feedback,
		Suggestions:    eval.Suggestions,
		BusinessImpact: eval.BusinessImpact,
	}, nil
}

// extractJSONBlock pulls the JSON payload out of a fenced ```json block
// if one is present, otherwise strips stray fences from the edges.
func extractJSONBlock(s string) string {
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

// salvageEvaluation recovers the essential fields from responses that
// are almost-JSON (trailing commas, extra prose around the object).
// Requires at least score and feedback to be recoverable.
func salvageEvaluation(s string) (*llmEvaluation, bool) {
	score := gjson.Get(s, "score")
	feedback := gjson.Get(s, "feedback")
	if !score.Exists() || !feedback.Exists() {
		return nil, false
	}

	eval := &llmEvaluation{
		Score:          score.Float(),
		IsCorrect:      gjson.Get(s, "is_correct").Bool(),
		Feedback:       feedback.String(),
		BusinessImpact: gjson.Get(s, "business_impact").String(),
	}
	for _, sug := range gjson.Get(s, "suggestions").Array() {
		eval.Suggestions = append(eval.Suggestions, sug.String())
	}
	return eval, true
}
