package evaluator

import (
	"testing"

	"github.com/sql-tutor/backend/internal/models"
)

func TestAdaptDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		current models.Difficulty
		scores  []float64
		want    models.Difficulty
	}{
		{"promote easy to medium", models.DifficultyEasy, []float64{0.9, 0.85, 1.0}, models.DifficultyMedium},
		{"promote medium to hard", models.DifficultyMedium, []float64{0.8, 0.8, 0.8}, models.DifficultyHard},
		{"demote hard to medium", models.DifficultyHard, []float64{0.2, 0.3, 0.35}, models.DifficultyMedium},
		{"demote medium to easy", models.DifficultyMedium, []float64{0.1, 0.4, 0.4}, models.DifficultyEasy},
		{"hold in the middle band", models.DifficultyMedium, []float64{0.5, 0.6, 0.7}, models.DifficultyMedium},
		{"no promotion past hard", models.DifficultyHard, []float64{1.0, 1.0, 1.0}, models.DifficultyHard},
		{"no demotion below easy", models.DifficultyEasy, []float64{0.0, 0.0, 0.0}, models.DifficultyEasy},
		{"two scores is not enough", models.DifficultyEasy, []float64{1.0, 1.0}, models.DifficultyEasy},
		{"empty window holds", models.DifficultyMedium, nil, models.DifficultyMedium},
		{"exactly 0.8 promotes", models.DifficultyEasy, []float64{0.8, 0.8, 0.8}, models.DifficultyMedium},
		{"exactly 0.4 demotes", models.DifficultyHard, []float64{0.4, 0.4, 0.4}, models.DifficultyMedium},
		{"invalid tier treated as easy", models.Difficulty("expert"), []float64{0.9, 0.9, 0.9}, models.DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdaptDifficulty(tt.current, tt.scores)
			if got != tt.want {
				t.Errorf("AdaptDifficulty(%s, %v) = %s, want %s", tt.current, tt.scores, got, tt.want)
			}
		})
	}
}

func TestAdaptDifficultyIsPure(t *testing.T) {
	scores := []float64{0.9, 0.85, 1.0}
	first := AdaptDifficulty(models.DifficultyEasy, scores)
	second := AdaptDifficulty(models.DifficultyEasy, scores)
	if first != second {
		t.Errorf("AdaptDifficulty not deterministic: %s then %s", first, second)
	}
}
