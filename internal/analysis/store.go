package analysis

import (
	"database/sql"
	"fmt"

	"github.com/sql-tutor/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Overview ─────────────────────────────────────────────

func (s *Store) OverallStats(userID string) (attempts, correct int, err error) {
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)
		 FROM user_attempts WHERE user_id = $1`,
		userID,
	).Scan(&attempts, &correct)
	if err != nil {
		return 0, 0, fmt.Errorf("overall stats: %w", err)
	}
	return attempts, correct, nil
}

func (s *Store) ModulesProgress(userID string) ([]models.ModuleProgress, error) {
	rows, err := s.db.Query(
		`SELECT up.module_id, lm.name, up.questions_attempted, up.questions_correct,
		        up.current_difficulty,
		        (SELECT AVG(ua.score) FROM user_attempts ua
		         WHERE ua.user_id = up.user_id AND ua.module_id = up.module_id)
		 FROM user_progress up
		 JOIN learning_modules lm ON lm.id = up.module_id
		 WHERE up.user_id = $1
		 ORDER BY up.module_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("modules progress: %w", err)
	}
	defer rows.Close()

	var progress []models.ModuleProgress
	for rows.Next() {
		var p models.ModuleProgress
		if err := rows.Scan(&p.ModuleID, &p.ModuleName, &p.QuestionsAttempted,
			&p.QuestionsCorrect, &p.CurrentDifficulty, &p.AvgScore); err != nil {
			return nil, fmt.Errorf("scan module progress: %w", err)
		}
		if p.QuestionsAttempted > 0 {
			p.CompletionPercentage = float64(p.QuestionsCorrect) / float64(p.QuestionsAttempted) * 100
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (s *Store) RecentAttempts(userID string, limit int) ([]models.RecentAttempt, error) {
	rows, err := s.db.Query(
		`SELECT ua.created_at, ua.user_sql, ua.is_correct, ua.score,
		        COALESCE(ua.feedback, ''), ua.question_id, COALESCE(lm.name, '')
		 FROM user_attempts ua
		 LEFT JOIN learning_modules lm ON lm.id = ua.module_id
		 WHERE ua.user_id = $1
		 ORDER BY ua.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.RecentAttempt
	for rows.Next() {
		var a models.RecentAttempt
		if err := rows.Scan(&a.CreatedAt, &a.UserSQL, &a.IsCorrect, &a.Score,
			&a.Feedback, &a.QuestionID, &a.ModuleName); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ── Detailed ─────────────────────────────────────────────

func (s *Store) PerformanceOverTime(userID string, days int) ([]models.PerformancePoint, error) {
	rows, err := s.db.Query(
		`SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD'), AVG(score), COUNT(*),
		        SUM(CASE WHEN is_correct THEN 1 ELSE 0 END)
		 FROM user_attempts
		 WHERE user_id = $1
		 GROUP BY DATE(created_at)
		 ORDER BY DATE(created_at) DESC
		 LIMIT $2`,
		userID, days,
	)
	if err != nil {
		return nil, fmt.Errorf("performance over time: %w", err)
	}
	defer rows.Close()

	var points []models.PerformancePoint
	for rows.Next() {
		var p models.PerformancePoint
		if err := rows.Scan(&p.Date, &p.AvgScore, &p.Attempts, &p.Correct); err != nil {
			return nil, fmt.Errorf("scan performance point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *Store) DifficultyDistribution(userID string) ([]models.DifficultyBucket, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), AVG(score),
		        SUM(CASE WHEN is_correct THEN 1 ELSE 0 END)
		 FROM user_attempts
		 WHERE user_id = $1
		 GROUP BY difficulty`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("difficulty distribution: %w", err)
	}
	defer rows.Close()

	var buckets []models.DifficultyBucket
	for rows.Next() {
		var b models.DifficultyBucket
		if err := rows.Scan(&b.Difficulty, &b.Attempts, &b.AvgScore, &b.Correct); err != nil {
			return nil, fmt.Errorf("scan difficulty bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (s *Store) CommonMistakes(userID string, limit int) ([]models.CommonMistake, error) {
	rows, err := s.db.Query(
		`SELECT feedback, COUNT(*) AS frequency
		 FROM user_attempts
		 WHERE user_id = $1 AND is_correct = FALSE AND feedback IS NOT NULL AND feedback != ''
		 GROUP BY feedback
		 ORDER BY frequency DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("common mistakes: %w", err)
	}
	defer rows.Close()

	var mistakes []models.CommonMistake
	for rows.Next() {
		var m models.CommonMistake
		if err := rows.Scan(&m.Feedback, &m.Frequency); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		mistakes = append(mistakes, m)
	}
	return mistakes, rows.Err()
}

// ── Learning Path ────────────────────────────────────────

func (s *Store) AllModules() ([]models.LearningModule, error) {
	rows, err := s.db.Query(
		`SELECT id, name, description FROM learning_modules ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()

	var modules []models.LearningModule
	for rows.Next() {
		var m models.LearningModule
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}
