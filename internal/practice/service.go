package practice

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/sql-tutor/backend/internal/catalog"
	"github.com/sql-tutor/backend/internal/evaluator"
	"github.com/sql-tutor/backend/internal/llm"
	"github.com/sql-tutor/backend/internal/models"
)

const (
	questionTemperature   = 0.8
	validationTemperature = 0.1
	adaptationWindow      = 5
)

type Service struct {
	store     *Store
	catalog   *catalog.Catalog
	llm       llm.Client
	evaluator *evaluator.Evaluator
}

func NewService(store *Store, cat *catalog.Catalog, client llm.Client, eval *evaluator.Evaluator) *Service {
	return &Service{store: store, catalog: cat, llm: client, evaluator: eval}
}

// ── Question Serving ─────────────────────────────────────

// GetBusinessQuestion serves a practice question for the module at the
// requested difficulty. Curated catalog templates are preferred; when a
// module has none, the LLM generates one, and if that also fails a
// generic built-in question is served. A fresh question ID is minted
// either way.
func (s *Service) GetBusinessQuestion(ctx context.Context, moduleID int, difficulty models.Difficulty) (*models.BusinessQuestion, error) {
	if !models.ValidDifficulties[difficulty] {
		difficulty = models.DifficultyEasy
	}

	moduleName := s.catalog.ModuleName(moduleID)

	if qid, tpl, ok := s.catalog.Pick(moduleID, difficulty); ok {
		return &models.BusinessQuestion{
			QuestionID: qid,
			ModuleID:   moduleID,
			ModuleName: moduleName,
			Difficulty: difficulty,
			Question:   tpl.Question,
			Hints:      tpl.Hints,
		}, nil
	}

	qid := mintQuestionID(moduleID, difficulty)
	question := s.generateQuestion(ctx, moduleID, moduleName, difficulty)

	generated := &models.Question{
		QuestionKey:     qid,
		ModuleID:        moduleID,
		QuestionText:    question,
		DifficultyLevel: difficulty,
	}
	if err := s.store.SaveGeneratedQuestion(generated); err != nil {
		log.Printf("[practice] save generated question %s: %v", qid, err)
	}

	return &models.BusinessQuestion{
		QuestionID: qid,
		ModuleID:   moduleID,
		ModuleName: moduleName,
		Difficulty: difficulty,
		Question:   question,
	}, nil
}

func (s *Service) generateQuestion(ctx context.Context, moduleID int, moduleName string, difficulty models.Difficulty) string {
	description := moduleName
	if m, ok := s.catalog.Module(moduleID); ok {
		description = m.Description
	}

	if s.llm != nil {
		prompt := llm.BuildQuestionPrompt(moduleName, description, string(difficulty))
		text, err := s.llm.Generate(ctx, llm.QuestionSystemPrompt, prompt, questionTemperature)
		if err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
		if err != nil {
			log.Printf("[practice] LLM question generation failed: %v", err)
		}
	}

	return fmt.Sprintf(
		"**%s Practice** (%s): Write a SQL query that demonstrates %s. Use realistic table and column names for a business of your choice.",
		moduleName, difficulty, strings.ToLower(description),
	)
}

func mintQuestionID(moduleID int, difficulty models.Difficulty) string {
	return fmt.Sprintf("%d_%s_%d", moduleID, difficulty, 1000+rand.Intn(9000))
}

// ── Evaluation ───────────────────────────────────────────

// EvaluateAnswer grades a submission, records the attempt, updates
// module progress, and re-adapts the user's difficulty from their five
// most recent scores in the module. A missing user ID gets an anonymous
// UUID so progress still accumulates within a session.
func (s *Service) EvaluateAnswer(ctx context.Context, req models.EvaluateAnswerRequest) (*models.EvaluateAnswerResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = "anon-" + uuid.NewString()
	}

	expectedSQL := req.ExpectedSQL
	if expectedSQL == "" {
		if q, err := s.store.GetQuestionByKey(req.QuestionID); err == nil && q.ExpectedSQL != nil {
			expectedSQL = *q.ExpectedSQL
		}
	}

	result := s.evaluator.Evaluate(ctx, req.QuestionID, req.UserSQL, expectedSQL, req.QuestionContext)

	moduleID, difficulty := catalog.ParseQuestionID(req.QuestionID)

	count, err := s.store.CountAttempts(userID, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	attempt := &models.UserAttempt{
		UserID:        userID,
		QuestionID:    req.QuestionID,
		UserSQL:       req.UserSQL,
		IsCorrect:     result.IsCorrect,
		Feedback:      result.Feedback,
		Score:         result.Score,
		AttemptNumber: count + 1,
	}
	if expectedSQL != "" {
		attempt.CorrectSQL = &expectedSQL
	}
	if err := s.store.InsertAttempt(attempt, moduleID, difficulty); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if err := s.store.RecordProgress(userID, moduleID, result.IsCorrect); err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}

	next, err := s.adaptFromHistory(userID, moduleID)
	if err != nil {
		log.Printf("[practice] difficulty adaptation for %s: %v", userID, err)
		next = difficulty
	}

	return &models.EvaluateAnswerResponse{
		EvaluationResult: result,
		NextDifficulty:   next,
		AttemptNumber:    attempt.AttemptNumber,
	}, nil
}

func (s *Service) adaptFromHistory(userID string, moduleID int) (models.Difficulty, error) {
	progress, err := s.store.GetOrCreateProgress(userID, moduleID)
	if err != nil {
		return "", err
	}

	scores, err := s.store.RecentScores(userID, moduleID, adaptationWindow)
	if err != nil {
		return "", err
	}

	normalized := make([]float64, len(scores))
	for i, score := range scores {
		normalized[i] = float64(score) / 100.0
	}

	next := evaluator.AdaptDifficulty(progress.CurrentDifficulty, normalized)
	if next != progress.CurrentDifficulty {
		if err := s.store.SetDifficulty(userID, moduleID, next); err != nil {
			return "", err
		}
	}
	return next, nil
}

// AdaptDifficulty applies the adaptation rule to caller-supplied
// normalized scores without touching stored progress.
func (s *Service) AdaptDifficulty(req models.AdaptDifficultyRequest) models.AdaptDifficultyResponse {
	return models.AdaptDifficultyResponse{
		NewDifficulty: evaluator.AdaptDifficulty(req.CurrentDifficulty, req.RecentScores),
	}
}

// ── Validation ───────────────────────────────────────────

// ValidateSQL asks the LLM for a syntax-only verdict. Without an LLM,
// or when the response cannot be parsed, validation is permissive and
// reports the query as valid.
func (s *Service) ValidateSQL(ctx context.Context, sqlText string) models.ValidateSQLResponse {
	if s.llm == nil {
		return models.ValidateSQLResponse{IsValid: true}
	}

	raw, err := s.llm.Generate(ctx, llm.EvaluationSystemPrompt, llm.BuildValidationPrompt(sqlText), validationTemperature)
	if err != nil {
		log.Printf("[practice] SQL validation failed: %v", err)
		return models.ValidateSQLResponse{IsValid: true}
	}

	parsed := gjson.Parse(extractJSON(raw))
	if !parsed.Get("is_valid").Exists() {
		return models.ValidateSQLResponse{IsValid: true}
	}

	resp := models.ValidateSQLResponse{
		IsValid: parsed.Get("is_valid").Bool(),
		Error:   parsed.Get("error").String(),
	}
	for _, item := range parsed.Get("suggestions").Array() {
		resp.Suggestions = append(resp.Suggestions, item.String())
	}
	return resp
}

// extractJSON strips markdown code fences the model sometimes wraps
// around JSON payloads.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if idx := strings.Index(cleaned, "```json"); idx >= 0 {
		cleaned = cleaned[idx+len("```json"):]
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
