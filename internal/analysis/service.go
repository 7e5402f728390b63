package analysis

import (
	"fmt"

	"github.com/sql-tutor/backend/internal/models"
)

const (
	recentAttemptsLimit  = 10
	performanceDaysLimit = 30
	mistakesLimit        = 5
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UserAnalytics assembles the overview report: totals, per-module
// progress, recent attempts, and derived strengths/weaknesses. Users
// with no attempts get an empty report rather than an error.
func (s *Service) UserAnalytics(userID string) (*models.UserAnalytics, error) {
	attempts, correct, err := s.store.OverallStats(userID)
	if err != nil {
		return nil, err
	}

	analytics := &models.UserAnalytics{
		UserID:                  userID,
		TotalQuestionsAttempted: attempts,
		TotalCorrect:            correct,
		ModulesProgress:         []models.ModuleProgress{},
		RecentAttempts:          []models.RecentAttempt{},
		Strengths:               []string{},
		AreasForImprovement:     []string{},
	}
	if attempts == 0 {
		return analytics, nil
	}
	analytics.OverallAccuracy = float64(correct) / float64(attempts) * 100

	if analytics.ModulesProgress, err = s.store.ModulesProgress(userID); err != nil {
		return nil, err
	}
	if analytics.RecentAttempts, err = s.store.RecentAttempts(userID, recentAttemptsLimit); err != nil {
		return nil, err
	}

	analytics.Strengths, analytics.AreasForImprovement = analyzePerformance(
		analytics.ModulesProgress, analytics.RecentAttempts)

	return analytics, nil
}

func (s *Service) DetailedAnalytics(userID string) (*models.DetailedAnalytics, error) {
	performance, err := s.store.PerformanceOverTime(userID, performanceDaysLimit)
	if err != nil {
		return nil, err
	}
	distribution, err := s.store.DifficultyDistribution(userID)
	if err != nil {
		return nil, err
	}
	mistakes, err := s.store.CommonMistakes(userID, mistakesLimit)
	if err != nil {
		return nil, err
	}

	return &models.DetailedAnalytics{
		PerformanceOverTime:    performance,
		DifficultyDistribution: distribution,
		CommonMistakes:         mistakes,
	}, nil
}

// LearningPath suggests next steps per module: keep practicing modules
// below 70% completion, bump difficulty on mastered easy modules, and
// start the first module not yet begun.
func (s *Service) LearningPath(userID string) (*models.LearningPathResponse, error) {
	progress, err := s.store.ModulesProgress(userID)
	if err != nil {
		return nil, err
	}

	suggestions := []models.LearningPathSuggestion{}
	started := make(map[int]bool, len(progress))

	for _, module := range progress {
		started[module.ModuleID] = true

		if module.CompletionPercentage < 70 {
			priority := "medium"
			if module.CompletionPercentage < 30 {
				priority = "high"
			}
			suggestions = append(suggestions, models.LearningPathSuggestion{
				Type:       "continue_module",
				ModuleName: module.ModuleName,
				Reason: fmt.Sprintf("You're at %.1f%% completion. Continue practicing to master this topic.",
					module.CompletionPercentage),
				Priority: priority,
			})
		} else if module.CurrentDifficulty == models.DifficultyEasy {
			suggestions = append(suggestions, models.LearningPathSuggestion{
				Type:       "increase_difficulty",
				ModuleName: module.ModuleName,
				Reason:     "You're doing well! Try medium difficulty questions to challenge yourself.",
				Priority:   "medium",
			})
		}
	}

	modules, err := s.store.AllModules()
	if err != nil {
		return nil, err
	}
	for _, module := range modules {
		if !started[module.ID] {
			suggestions = append(suggestions, models.LearningPathSuggestion{
				Type:       "start_module",
				ModuleName: module.Name,
				Reason:     fmt.Sprintf("Ready to learn %s? This builds on your existing knowledge.", module.Name),
				Priority:   "low",
			})
			break
		}
	}

	return &models.LearningPathResponse{Suggestions: suggestions}, nil
}

// analyzePerformance derives strength/weakness messages from per-module
// accuracy and the trend of the five most recent scores.
func analyzePerformance(modules []models.ModuleProgress, recent []models.RecentAttempt) (strengths, improvements []string) {
	for _, module := range modules {
		if module.QuestionsAttempted < 3 {
			continue
		}
		accuracy := float64(module.QuestionsCorrect) / float64(module.QuestionsAttempted) * 100
		if accuracy >= 80 {
			strengths = append(strengths,
				fmt.Sprintf("Strong performance in %s (%.1f%% accuracy)", module.ModuleName, accuracy))
		} else if accuracy < 50 {
			improvements = append(improvements,
				fmt.Sprintf("Need more practice with %s (%.1f%% accuracy)", module.ModuleName, accuracy))
		}
	}

	if len(recent) >= 5 {
		var sum float64
		for _, attempt := range recent[:5] {
			sum += float64(attempt.Score) / 100.0
		}
		avg := sum / 5
		if avg >= 0.8 {
			strengths = append(strengths, "Improving performance in recent attempts")
		} else if avg < 0.5 {
			improvements = append(improvements, "Recent performance shows room for improvement")
		}
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Keep practicing to build your SQL skills!")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Focus on consistency across all modules")
	}
	return strengths, improvements
}
