package practice

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sql-tutor/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Modules ──────────────────────────────────────────────

func (s *Store) GetModules() ([]models.LearningModule, error) {
	rows, err := s.db.Query(
		`SELECT id, name, description, created_at FROM learning_modules ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()

	var modules []models.LearningModule
	for rows.Next() {
		var m models.LearningModule
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		m.OrderIndex = m.ID
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (s *Store) GetModule(id int) (*models.LearningModule, error) {
	var m models.LearningModule
	err := s.db.QueryRow(
		`SELECT id, name, description, created_at FROM learning_modules WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.OrderIndex = m.ID
	return &m, nil
}

// ── Questions ────────────────────────────────────────────

// SaveGeneratedQuestion persists an LLM-generated question so the same
// question ID can be resolved on later evaluation calls.
func (s *Store) SaveGeneratedQuestion(q *models.Question) error {
	hints, err := json.Marshal(q.Hints)
	if err != nil {
		return fmt.Errorf("marshal hints: %w", err)
	}
	err = s.db.QueryRow(
		`INSERT INTO questions (question_key, module_id, difficulty, question, expected_sql, hints, source)
		 VALUES ($1, $2, $3, $4, $5, $6, 'generated')
		 ON CONFLICT (question_key) DO UPDATE SET question = EXCLUDED.question
		 RETURNING id, created_at`,
		q.QuestionKey, q.ModuleID, q.DifficultyLevel, q.QuestionText, q.ExpectedSQL, hints,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("save question: %w", err)
	}
	return nil
}

func (s *Store) GetQuestionByKey(key string) (*models.Question, error) {
	var q models.Question
	var hints []byte
	err := s.db.QueryRow(
		`SELECT id, question_key, module_id, difficulty, question, expected_sql, hints, created_at
		 FROM questions WHERE question_key = $1`,
		key,
	).Scan(&q.ID, &q.QuestionKey, &q.ModuleID, &q.DifficultyLevel, &q.QuestionText,
		&q.ExpectedSQL, &hints, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(hints) > 0 {
		if err := json.Unmarshal(hints, &q.Hints); err != nil {
			return nil, fmt.Errorf("decode hints: %w", err)
		}
	}
	return &q, nil
}

// ── Attempts ─────────────────────────────────────────────

func (s *Store) CountAttempts(userID, questionID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM user_attempts WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return count, nil
}

func (s *Store) InsertAttempt(a *models.UserAttempt, moduleID int, difficulty models.Difficulty) error {
	err := s.db.QueryRow(
		`INSERT INTO user_attempts (user_id, question_id, module_id, difficulty, user_sql, score, is_correct, feedback, correct_sql, attempt_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		a.UserID, a.QuestionID, moduleID, difficulty, a.UserSQL, a.Score, a.IsCorrect,
		a.Feedback, a.CorrectSQL, a.AttemptNumber,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// RecentScores returns the newest attempt scores for a user in a module,
// most recent first.
func (s *Store) RecentScores(userID string, moduleID, limit int) ([]int, error) {
	rows, err := s.db.Query(
		`SELECT score FROM user_attempts
		 WHERE user_id = $1 AND module_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, moduleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// ── Progress ─────────────────────────────────────────────

func (s *Store) GetOrCreateProgress(userID string, moduleID int) (*models.UserProgress, error) {
	var p models.UserProgress
	err := s.db.QueryRow(
		`INSERT INTO user_progress (user_id, module_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, module_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING id, user_id, module_id, current_difficulty, questions_attempted, questions_correct`,
		userID, moduleID,
	).Scan(&p.ID, &p.UserID, &p.ModuleID, &p.CurrentDifficulty,
		&p.QuestionsAttempted, &p.QuestionsCorrect)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &p, nil
}

func (s *Store) RecordProgress(userID string, moduleID int, correct bool) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO user_progress (user_id, module_id, questions_attempted, questions_correct)
		 VALUES ($1, $2, 1, $3)
		 ON CONFLICT (user_id, module_id) DO UPDATE SET
		     questions_attempted = user_progress.questions_attempted + 1,
		     questions_correct = user_progress.questions_correct + $3,
		     updated_at = NOW()`,
		userID, moduleID, correctInc,
	)
	if err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	return nil
}

func (s *Store) SetDifficulty(userID string, moduleID int, difficulty models.Difficulty) error {
	_, err := s.db.Exec(
		`UPDATE user_progress SET current_difficulty = $1, updated_at = NOW()
		 WHERE user_id = $2 AND module_id = $3`,
		difficulty, userID, moduleID,
	)
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	return nil
}

func (s *Store) ListProgress(userID string) ([]models.UserProgressEntry, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.user_id, p.module_id, p.current_difficulty,
		        p.questions_attempted, p.questions_correct, p.updated_at,
		        m.name, m.description
		 FROM user_progress p
		 JOIN learning_modules m ON m.id = p.module_id
		 WHERE p.user_id = $1
		 ORDER BY p.module_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var entries []models.UserProgressEntry
	for rows.Next() {
		var e models.UserProgressEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ModuleID, &e.CurrentDifficulty,
			&e.QuestionsAttempted, &e.QuestionsCorrect, &e.LastAccessed,
			&e.ModuleName, &e.ModuleDescription); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		e.CompletionPercentage = completionPercent(e.QuestionsCorrect, e.QuestionsAttempted)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// completionPercent reports correct answers as a percentage of
// attempts. An unstarted module is 0% rather than a division by zero.
func completionPercent(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 100
}
