package models

// EvaluationResult is the single result shape every evaluation path
// produces, whether LLM-backed or locally synthesized. Score is always
// clamped to [0, 100]; for locally synthesized results IsCorrect is
// derived as score >= 80 and never set independently.
type EvaluationResult struct {
	Score          int      `json:"score"`
	IsCorrect      bool     `json:"is_correct"`
	Feedback       string   `json:"feedback"`
	Suggestions    []string `json:"suggestions"`
	BusinessImpact string   `json:"business_impact,omitempty"`
}

// QuestionContext is the business-scenario metadata recovered for a
// question identifier. QuestionText and ExpectedSQL may be empty when
// the identifier does not resolve to a known template.
type QuestionContext struct {
	Scenario        string   `json:"scenario"`
	BusinessContext string   `json:"business_context"`
	QuestionText    string   `json:"question_text"`
	ExpectedSQL     string   `json:"expected_sql"`
	ModuleName      string   `json:"module_name"`
	Hints           []string `json:"hints,omitempty"`
}

// ── API Request/Response Types ────────────────────────────

type EvaluateAnswerRequest struct {
	UserID          string `json:"user_id,omitempty"`
	QuestionID      string `json:"question_id"`
	UserSQL         string `json:"user_sql"`
	ExpectedSQL     string `json:"expected_sql,omitempty"`
	QuestionContext string `json:"question_context,omitempty"`
}

type EvaluateAnswerResponse struct {
	EvaluationResult
	NextDifficulty Difficulty `json:"next_difficulty,omitempty"`
	AttemptNumber  int        `json:"attempt_number,omitempty"`
}

type AdaptDifficultyRequest struct {
	CurrentDifficulty Difficulty `json:"current_difficulty"`
	RecentScores      []float64  `json:"recent_scores"`
}

type AdaptDifficultyResponse struct {
	NewDifficulty Difficulty `json:"new_difficulty"`
}

type GenerateQuestionRequest struct {
	ModuleID   int        `json:"module_id"`
	Difficulty Difficulty `json:"difficulty"`
}

type ValidateSQLRequest struct {
	SQL string `json:"sql"`
}

type ValidateSQLResponse struct {
	IsValid     bool     `json:"is_valid"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
