package evaluator

import "github.com/sql-tutor/backend/internal/models"

// minScoresForAdaptation is the smallest rolling window the adapter
// will act on; with fewer scores the current tier is kept.
const minScoresForAdaptation = 3

const (
	promoteThreshold = 0.8
	demoteThreshold  = 0.4
)

// AdaptDifficulty decides the next difficulty tier for a (user, module)
// pair from the rolling window of recent normalized scores (0.0-1.0).
// It is a pure function of its inputs and moves at most one tier per
// call. An unrecognized current tier is treated as easy.
func AdaptDifficulty(current models.Difficulty, recentScores []float64) models.Difficulty {
	if !models.ValidDifficulties[current] {
		current = models.DifficultyEasy
	}

	if len(recentScores) < minScoresForAdaptation {
		return current
	}

	var sum float64
	for _, s := range recentScores {
		sum += s
	}
	avg := sum / float64(len(recentScores))

	switch {
	case avg >= promoteThreshold && current != models.DifficultyHard:
		if current == models.DifficultyEasy {
			return models.DifficultyMedium
		}
		return models.DifficultyHard
	case avg <= demoteThreshold && current != models.DifficultyEasy:
		if current == models.DifficultyHard {
			return models.DifficultyMedium
		}
		return models.DifficultyEasy
	default:
		return current
	}
}
