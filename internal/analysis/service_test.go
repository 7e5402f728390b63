package analysis

import (
	"strings"
	"testing"

	"github.com/sql-tutor/backend/internal/models"
)

func TestAnalyzePerformance(t *testing.T) {
	modules := []models.ModuleProgress{
		{ModuleName: "Subqueries", QuestionsAttempted: 5, QuestionsCorrect: 5},
		{ModuleName: "Single Row Functions", QuestionsAttempted: 4, QuestionsCorrect: 1},
		{ModuleName: "Multiple Table Operations", QuestionsAttempted: 2, QuestionsCorrect: 0},
	}

	strengths, improvements := analyzePerformance(modules, nil)

	if !anyContains(strengths, "Strong performance in Subqueries") {
		t.Errorf("strengths = %v, missing Subqueries", strengths)
	}
	if !anyContains(improvements, "Need more practice with Single Row Functions") {
		t.Errorf("improvements = %v, missing Single Row Functions", improvements)
	}
	// Under 3 attempts never generates a message.
	if anyContains(improvements, "Multiple Table Operations") {
		t.Errorf("improvements = %v, module with 2 attempts should be skipped", improvements)
	}
}

func TestAnalyzePerformanceRecentTrend(t *testing.T) {
	high := []models.RecentAttempt{{Score: 90}, {Score: 85}, {Score: 95}, {Score: 80}, {Score: 100}}
	strengths, _ := analyzePerformance(nil, high)
	if !anyContains(strengths, "Improving performance in recent attempts") {
		t.Errorf("strengths = %v, missing recent trend", strengths)
	}

	low := []models.RecentAttempt{{Score: 20}, {Score: 30}, {Score: 40}, {Score: 45}, {Score: 10}}
	_, improvements := analyzePerformance(nil, low)
	if !anyContains(improvements, "Recent performance shows room for improvement") {
		t.Errorf("improvements = %v, missing recent trend", improvements)
	}

	// Four attempts is below the trend window.
	strengths, improvements = analyzePerformance(nil, high[:4])
	if anyContains(strengths, "recent attempts") {
		t.Errorf("strengths = %v, trend fired below the window", strengths)
	}
}

func TestAnalyzePerformanceDefaults(t *testing.T) {
	strengths, improvements := analyzePerformance(nil, nil)

	if len(strengths) != 1 || strengths[0] != "Keep practicing to build your SQL skills!" {
		t.Errorf("default strengths = %v", strengths)
	}
	if len(improvements) != 1 || improvements[0] != "Focus on consistency across all modules" {
		t.Errorf("default improvements = %v", improvements)
	}
}

func anyContains(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
