package evaluator

import (
	"strings"
	"testing"
)

func TestCompareExpectedNoReference(t *testing.T) {
	rep := CompareExpected("SELECT 1", "")
	if rep.ScoreDelta != 0 || len(rep.Issues) != 0 || len(rep.Successes) != 0 {
		t.Errorf("CompareExpected with empty reference = %+v, want empty report", rep)
	}
}

func TestCompareExpectedKeywordOverlap(t *testing.T) {
	user := "SELECT name FROM employees WHERE id = 1"
	expected := "SELECT name FROM employees WHERE department = 'Sales'"

	rep := CompareExpected(user, expected)

	// SELECT, FROM, WHERE shared at +5 each, plus matching table name +10.
	if rep.ScoreDelta != 25 {
		t.Errorf("ScoreDelta = %d, want 25", rep.ScoreDelta)
	}
	if !containsLine(rep.Successes, "✅ Used correct table names") {
		t.Errorf("missing table name success in %v", rep.Successes)
	}
}

func TestCompareExpectedMissingKeyword(t *testing.T) {
	user := "SELECT name FROM employees"
	expected := "SELECT name FROM employees WHERE id = 1"

	rep := CompareExpected(user, expected)

	if !containsLine(rep.Issues, "⚠️ Expected to use WHERE") {
		t.Errorf("missing WHERE issue in %v", rep.Issues)
	}
	// +5 SELECT +5 FROM -8 WHERE +10 tables
	if rep.ScoreDelta != 12 {
		t.Errorf("ScoreDelta = %d, want 12", rep.ScoreDelta)
	}
}

func TestCompareExpectedWrongTable(t *testing.T) {
	rep := CompareExpected("SELECT * FROM staff", "SELECT * FROM employees")

	if !containsLine(rep.Issues, "⚠️ Check table names") {
		t.Errorf("missing table warning in %v", rep.Issues)
	}
	// +5 SELECT +5 FROM -5 tables
	if rep.ScoreDelta != 5 {
		t.Errorf("ScoreDelta = %d, want 5", rep.ScoreDelta)
	}
}

func TestExtractTableNames(t *testing.T) {
	tables := extractTableNames(strings.ToUpper(
		"INSERT INTO orders SELECT * FROM order_staging; UPDATE inventory SET n = 0; CREATE TABLE archive (id INT)"))

	want := map[string]bool{"ORDERS": true, "ORDER_STAGING": true, "INVENTORY": true, "ARCHIVE": true}
	if len(tables) != len(want) {
		t.Fatalf("extractTableNames = %v, want %d names", tables, len(want))
	}
	for _, table := range tables {
		if !want[table] {
			t.Errorf("unexpected table name %q", table)
		}
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}
