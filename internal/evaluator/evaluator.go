package evaluator

import (
	"context"
	"fmt"
	"log"

	"github.com/sql-tutor/backend/internal/catalog"
	"github.com/sql-tutor/backend/internal/llm"
	"github.com/sql-tutor/backend/internal/models"
)

const evaluationTemperature = 0.3

// Evaluator grades SQL submissions. It prefers the LLM grader and falls
// back to local heuristic scoring whenever the LLM is unavailable or its
// response cannot be parsed, so evaluation never fails.
type Evaluator struct {
	llm     llm.Client
	catalog *catalog.Catalog
}

func New(client llm.Client, cat *catalog.Catalog) *Evaluator {
	return &Evaluator{llm: client, catalog: cat}
}

// Evaluate grades userSQL for the given question. expectedSQL and
// questionContext may be empty; missing pieces are recovered from the
// question catalog.
func (e *Evaluator) Evaluate(ctx context.Context, questionID, userSQL, expectedSQL, questionContext string) models.EvaluationResult {
	resolved := e.catalog.Resolve(questionID, userSQL)
	if expectedSQL == "" {
		expectedSQL = resolved.ExpectedSQL
	} else if resolved.ExpectedSQL == "" {
		// The catalog had no curated solution, but the caller supplied
		// one; carry it so feedback can show the expected solution.
		resolved.ExpectedSQL = expectedSQL
	}

	if e.llm != nil {
		if result, err := e.evaluateWithLLM(ctx, userSQL, expectedSQL, questionContext, resolved); err == nil {
			return *result
		} else {
			log.Printf("[evaluator] LLM evaluation failed, using local scoring: %v", err)
		}
	}

	return Synthesize(userSQL, expectedSQL, resolved)
}

func (e *Evaluator) evaluateWithLLM(ctx context.Context, userSQL, expectedSQL, questionContext string, resolved models.QuestionContext) (*models.EvaluationResult, error) {
	prompt := llm.BuildEvaluationPrompt(promptContext(questionContext, expectedSQL, resolved), userSQL)

	raw, err := e.llm.Generate(ctx, llm.EvaluationSystemPrompt, prompt, evaluationTemperature)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	result, err := ParseLLMEvaluation(raw)
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return result, nil
}

// promptContext assembles the question description handed to the LLM.
// An explicit context from the caller wins; otherwise it is rebuilt from
// the resolved catalog entry.
func promptContext(questionContext, expectedSQL string, resolved models.QuestionContext) string {
	if questionContext != "" {
		return questionContext
	}

	text := resolved.QuestionText
	if text == "" {
		text = fmt.Sprintf("A %s exercise covering %s.", resolved.ModuleName, resolved.BusinessContext)
	}
	if expectedSQL != "" {
		return fmt.Sprintf("%s\n\nExpected solution:\n```sql\n%s\n```", text, expectedSQL)
	}
	return text
}
