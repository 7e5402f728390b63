package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

type LearningModule struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	OrderIndex      int       `json:"order_index"`
	DifficultyLevel string    `json:"difficulty_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// Question is a persisted practice question. Catalog-template questions
// are served without a row; LLM-generated ones are stored here so the
// same question can be re-served.
type Question struct {
	ID              int64      `json:"id"`
	QuestionKey     string     `json:"question_key"`
	ModuleID        int        `json:"module_id"`
	QuestionText    string     `json:"question_text"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
	ExpectedSQL     *string    `json:"expected_sql,omitempty"`
	Hints           []string   `json:"hints,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// BusinessQuestion is the shape served to the practice UI.
type BusinessQuestion struct {
	QuestionID string     `json:"question_id"`
	ModuleID   int        `json:"module_id"`
	ModuleName string     `json:"module_name"`
	Difficulty Difficulty `json:"difficulty"`
	Question   string     `json:"question"`
	Hints      []string   `json:"hints"`
}
