package evaluator

import (
	"fmt"
	"strings"

	"github.com/sql-tutor/backend/internal/models"
)

const baseScore = 50

// Synthesize runs the full local heuristic pipeline and merges the
// stage reports into one EvaluationResult. The expected-solution
// comparison stage only runs when a reference is available. It performs
// no I/O and tolerates empty inputs and missing context fields.
func Synthesize(userSQL, expectedSQL string, ctx models.QuestionContext) models.EvaluationResult {
	score := baseScore
	var successes, issues []string

	for _, check := range MatchConstructs(userSQL, expectedSQL) {
		if check.Found {
			successes = append(successes, "✅ "+check.SuccessMessage)
			score += check.SuccessScore
		} else if check.Expected {
			issues = append(issues, "❌ "+check.MissingMessage)
			score -= check.FailurePenalty
		}
	}

	syntax := Critique(userSQL)
	successes = append(successes, syntax.Successes...)
	issues = append(issues, syntax.Issues...)
	score += syntax.ScoreDelta

	if expectedSQL != "" {
		cmp := CompareExpected(userSQL, expectedSQL)
		successes = append(successes, cmp.Successes...)
		issues = append(issues, cmp.Issues...)
		score += cmp.ScoreDelta
	}

	score = clampScore(score)

	return models.EvaluationResult{
		Score:          score,
		IsCorrect:      score >= 80,
		Feedback:       strings.Join(feedbackSections(successes, issues, ctx), "\n\n"),
		Suggestions:    buildSuggestions(ctx, issues),
		BusinessImpact: "Detailed analysis of your SQL with business context",
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// feedbackSections assembles the display sections in fixed order:
// successes, issues, business context, expected solution.
func feedbackSections(successes, issues []string, ctx models.QuestionContext) []string {
	var sections []string

	if len(successes) > 0 {
		sections = append(sections, "**What you got right:**\n"+strings.Join(successes, "\n"))
	}
	if len(issues) > 0 {
		sections = append(sections, "**Areas for improvement:**\n"+strings.Join(issues, "\n"))
	}

	scenario := ctx.Scenario
	if scenario == "" {
		scenario = "Database Operations"
	}
	business := ctx.BusinessContext
	if business == "" {
		business = "Focus on writing efficient, maintainable SQL."
	}
	sections = append(sections, fmt.Sprintf("**Business Context:** %s\n%s", scenario, business))

	if ctx.ExpectedSQL != "" {
		sections = append(sections, fmt.Sprintf("**Expected Solution:**\n```sql\n%s\n```", ctx.ExpectedSQL))
	}

	return sections
}

func buildSuggestions(ctx models.QuestionContext, issues []string) []string {
	suggestions := []string{"Use proper SQL syntax and formatting"}

	if anyContains(issues, "WHERE") {
		suggestions = append(suggestions, "Include WHERE clause to filter records appropriately")
	}
	if anyContains(issues, "semicolon") {
		suggestions = append(suggestions, "End SQL statements with semicolon for clarity")
	}
	if anyContains(issues, "parentheses") {
		suggestions = append(suggestions, "Check parentheses matching in complex expressions")
	}

	switch {
	case strings.Contains(ctx.ModuleName, "Single Row Functions"):
		suggestions = append(suggestions, "Utilize SQL functions for data transformation")
	case strings.Contains(ctx.ModuleName, "Multiple Table Operations"):
		suggestions = append(suggestions, "Use appropriate JOIN types for table relationships")
	case strings.Contains(ctx.ModuleName, "Group Functions"):
		suggestions = append(suggestions, "Apply GROUP BY with aggregate functions correctly")
	}

	suggestions = append(suggestions,
		"Test queries in a development environment first",
		"Consider performance implications for large datasets",
	)

	return dedupe(suggestions)
}

func anyContains(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
