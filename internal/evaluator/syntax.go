package evaluator

import "strings"

// Report collects the issues, successes, and net score change from one
// stage of the local evaluation pipeline.
type Report struct {
	Issues     []string
	Successes  []string
	ScoreDelta int
}

var dangerousPatterns = []string{"DROP TABLE", "DELETE FROM", "--", "/*"}

// Critique checks structural well-formedness signals on the submitted
// SQL. Every check is independent and additive; none of them block
// scoring.
func Critique(userSQL string) Report {
	var rep Report
	upper := strings.ToUpper(userSQL)

	if strings.Count(userSQL, "(") != strings.Count(userSQL, ")") {
		rep.Issues = append(rep.Issues, "❌ Mismatched parentheses")
		rep.ScoreDelta -= 15
	} else {
		rep.Successes = append(rep.Successes, "✅ Proper parentheses usage")
		rep.ScoreDelta += 5
	}

	if strings.HasSuffix(strings.TrimSpace(userSQL), ";") {
		rep.Successes = append(rep.Successes, "✅ Properly terminated with semicolon")
		rep.ScoreDelta += 5
	} else {
		rep.Issues = append(rep.Issues, "⚠️ Consider ending SQL statements with semicolon")
		rep.ScoreDelta -= 3
	}

	// Advisory: flags risky statements without blocking the score.
	if containsAny(upper, dangerousPatterns) {
		rep.Issues = append(rep.Issues, "⚠️ Be cautious with potentially dangerous SQL operations")
		rep.ScoreDelta -= 5
	}

	if strings.Contains(upper, "CURRENT_DATE") {
		rep.Successes = append(rep.Successes, "✅ Used CURRENT_DATE for date values")
		rep.ScoreDelta += 8
	}

	if strings.Contains(upper, "PRIMARY KEY") {
		rep.Successes = append(rep.Successes, "✅ Defined primary key for data integrity")
		rep.ScoreDelta += 10
	}

	return rep
}
