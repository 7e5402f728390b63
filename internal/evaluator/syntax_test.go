package evaluator

import (
	"strings"
	"testing"
)

func TestCritique(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantDelta int
		wantLine  string
	}{
		{
			"balanced parens and semicolon",
			"SELECT COUNT(*) FROM t;",
			10,
			"✅ Properly terminated with semicolon",
		},
		{
			"mismatched parens",
			"SELECT COUNT( FROM t;",
			-10, // -15 parens +5 semicolon
			"❌ Mismatched parentheses",
		},
		{
			"missing semicolon",
			"SELECT 1",
			2, // +5 parens -3 semicolon
			"⚠️ Consider ending SQL statements with semicolon",
		},
		{
			"dangerous drop",
			"DROP TABLE users;",
			5, // +5 parens +5 semicolon -5 dangerous
			"⚠️ Be cautious with potentially dangerous SQL operations",
		},
		{
			"sql comment flagged",
			"SELECT 1; -- comment",
			-3, // +5 parens -3 semicolon -5 dangerous
			"⚠️ Be cautious with potentially dangerous SQL operations",
		},
		{
			"current date bonus",
			"UPDATE t SET d = CURRENT_DATE WHERE id = 1;",
			18, // +5 +5 +8
			"✅ Used CURRENT_DATE for date values",
		},
		{
			"primary key bonus",
			"CREATE TABLE t (id INT PRIMARY KEY);",
			20, // +5 +5 +10
			"✅ Defined primary key for data integrity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Critique(tt.sql)
			if rep.ScoreDelta != tt.wantDelta {
				t.Errorf("Critique(%q).ScoreDelta = %d, want %d", tt.sql, rep.ScoreDelta, tt.wantDelta)
			}
			all := strings.Join(append(rep.Successes, rep.Issues...), "\n")
			if !strings.Contains(all, tt.wantLine) {
				t.Errorf("Critique(%q) missing line %q in:\n%s", tt.sql, tt.wantLine, all)
			}
		})
	}
}

func TestCritiqueDangerousPenaltyAppliedOnce(t *testing.T) {
	// Multiple risky patterns in one statement still cost 5 points total.
	rep := Critique("DELETE FROM t; DROP TABLE t; -- bye")
	if rep.ScoreDelta != -3 { // +5 parens -3 semicolon -5 dangerous
		t.Errorf("ScoreDelta = %d, want -3", rep.ScoreDelta)
	}
	count := 0
	for _, issue := range rep.Issues {
		if strings.Contains(issue, "dangerous") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("dangerous warning emitted %d times, want 1", count)
	}
}
