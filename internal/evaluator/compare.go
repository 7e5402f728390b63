package evaluator

import (
	"fmt"
	"regexp"
	"strings"
)

var comparisonKeywords = []string{"SELECT", "FROM", "WHERE", "UPDATE", "SET", "CREATE TABLE", "INSERT INTO"}

// tableNameRe captures the token after FROM/UPDATE/INTO/TABLE. Simple
// token capture, deliberately not a parser.
var tableNameRe = regexp.MustCompile(`(?:FROM|UPDATE|INTO|TABLE)\s+(\w+)`)

// CompareExpected checks keyword and table-name overlap between the
// submission and the reference solution. Returns an empty report when
// there is no reference to compare against.
func CompareExpected(userSQL, expectedSQL string) Report {
	var rep Report
	if expectedSQL == "" {
		return rep
	}

	userUpper := strings.ToUpper(userSQL)
	expectedUpper := strings.ToUpper(expectedSQL)

	for _, kw := range comparisonKeywords {
		inExpected := strings.Contains(expectedUpper, kw)
		inUser := strings.Contains(userUpper, kw)
		switch {
		case inExpected && inUser:
			rep.ScoreDelta += 5
		case inExpected && !inUser:
			rep.Issues = append(rep.Issues, fmt.Sprintf("⚠️ Expected to use %s", kw))
			rep.ScoreDelta -= 8
		}
	}

	userTables := extractTableNames(userUpper)
	expectedTables := extractTableNames(expectedUpper)

	// Skip the table check entirely when either side names no tables.
	if len(userTables) > 0 && len(expectedTables) > 0 {
		if intersects(userTables, expectedTables) {
			rep.Successes = append(rep.Successes, "✅ Used correct table names")
			rep.ScoreDelta += 10
		} else {
			rep.Issues = append(rep.Issues, "⚠️ Check table names")
			rep.ScoreDelta -= 5
		}
	}

	return rep
}

func extractTableNames(upperSQL string) []string {
	var tables []string
	for _, m := range tableNameRe.FindAllStringSubmatch(upperSQL, -1) {
		tables = append(tables, m[1])
	}
	return tables
}

func intersects(a, b []string) bool {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	for _, t := range a {
		if set[t] {
			return true
		}
	}
	return false
}
