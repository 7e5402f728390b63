package models

import "time"

// UserAttempt is one persisted submission against a question, with its
// evaluation outcome. AttemptNumber is monotonic per (user, question)
// starting at 1.
type UserAttempt struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	QuestionID    string    `json:"question_id"`
	UserSQL       string    `json:"user_sql"`
	IsCorrect     bool      `json:"is_correct"`
	Feedback      string    `json:"feedback,omitempty"`
	CorrectSQL    *string   `json:"correct_sql,omitempty"`
	Score         int       `json:"score"`
	AttemptNumber int       `json:"attempt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserProgress struct {
	ID                   int64      `json:"id"`
	UserID               string     `json:"user_id"`
	ModuleID             int        `json:"module_id"`
	CurrentDifficulty    Difficulty `json:"current_difficulty"`
	QuestionsAttempted   int        `json:"questions_attempted"`
	QuestionsCorrect     int        `json:"questions_correct"`
	CompletionPercentage float64    `json:"completion_percentage"`
	LastAccessed         *time.Time `json:"last_accessed,omitempty"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
}

type UserProgressEntry struct {
	UserProgress
	ModuleName        string `json:"module_name"`
	ModuleDescription string `json:"module_description"`
}

// ── Analytics Types ───────────────────────────────────────

type UserAnalytics struct {
	UserID                  string           `json:"user_id"`
	TotalQuestionsAttempted int              `json:"total_questions_attempted"`
	TotalCorrect            int              `json:"total_correct"`
	OverallAccuracy         float64          `json:"overall_accuracy"`
	ModulesProgress         []ModuleProgress `json:"modules_progress"`
	RecentAttempts          []RecentAttempt  `json:"recent_attempts"`
	Strengths               []string         `json:"strengths"`
	AreasForImprovement     []string         `json:"areas_for_improvement"`
}

type ModuleProgress struct {
	ModuleID             int        `json:"module_id"`
	ModuleName           string     `json:"module_name"`
	QuestionsAttempted   int        `json:"questions_attempted"`
	QuestionsCorrect     int        `json:"questions_correct"`
	CompletionPercentage float64    `json:"completion_percentage"`
	CurrentDifficulty    Difficulty `json:"current_difficulty"`
	AvgScore             *float64   `json:"avg_score,omitempty"`
}

type RecentAttempt struct {
	CreatedAt  time.Time `json:"created_at"`
	UserSQL    string    `json:"user_sql"`
	IsCorrect  bool      `json:"is_correct"`
	Score      int       `json:"score"`
	Feedback   string    `json:"feedback,omitempty"`
	QuestionID string    `json:"question_id"`
	ModuleName string    `json:"module_name,omitempty"`
}

type PerformancePoint struct {
	Date     string  `json:"date"`
	AvgScore float64 `json:"avg_score"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
}

type DifficultyBucket struct {
	Difficulty Difficulty `json:"difficulty_level"`
	Attempts   int        `json:"attempts"`
	AvgScore   float64    `json:"avg_score"`
	Correct    int        `json:"correct"`
}

type CommonMistake struct {
	Feedback  string `json:"feedback"`
	Frequency int    `json:"frequency"`
}

type DetailedAnalytics struct {
	PerformanceOverTime    []PerformancePoint `json:"performance_over_time"`
	DifficultyDistribution []DifficultyBucket `json:"difficulty_distribution"`
	CommonMistakes         []CommonMistake    `json:"common_mistakes"`
}

type LearningPathSuggestion struct {
	Type       string `json:"type"`
	ModuleName string `json:"module_name"`
	Reason     string `json:"reason"`
	Priority   string `json:"priority"`
}

type LearningPathResponse struct {
	Suggestions []LearningPathSuggestion `json:"suggestions"`
}
