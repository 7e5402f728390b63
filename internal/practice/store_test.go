package practice

import "testing"

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		attempted int
		want      float64
	}{
		{"no attempts", 0, 0, 0},
		{"all correct", 5, 5, 100},
		{"half correct", 3, 6, 50},
		{"none correct", 0, 4, 0},
		{"quarter", 1, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completionPercent(tt.correct, tt.attempted)
			if got != tt.want {
				t.Errorf("completionPercent(%d, %d) = %v, want %v", tt.correct, tt.attempted, got, tt.want)
			}
		})
	}
}
