package evaluator

import "strings"

// ConstructCheck records whether one SQL construct appears in the
// submission and whether the reference solution calls for it, plus the
// score deltas and feedback lines the synthesizer applies.
type ConstructCheck struct {
	Name           string
	Found          bool
	Expected       bool
	SuccessScore   int
	FailurePenalty int
	SuccessMessage string
	MissingMessage string
}

type constructDef struct {
	name           string
	keywords       []string
	successScore   int
	failurePenalty int
	successMessage string
	missingMessage string
}

// Detection is keyword containment on the uppercased text, not parsing.
// False positives (keywords inside string literals, comments) are part
// of the contract; Resolve callers rely on the same behavior.
var constructDefs = []constructDef{
	{
		name:           "select_statement",
		keywords:       []string{"SELECT"},
		successScore:   10,
		failurePenalty: 15,
		successMessage: "Used SELECT statement for data retrieval",
		missingMessage: "Missing SELECT statement for data query",
	},
	{
		name:           "update_statement",
		keywords:       []string{"UPDATE"},
		successScore:   15,
		failurePenalty: 20,
		successMessage: "Used UPDATE statement for data modification",
		missingMessage: "Missing UPDATE statement",
	},
	{
		name:           "create_table",
		keywords:       []string{"CREATE TABLE"},
		successScore:   15,
		failurePenalty: 25,
		successMessage: "Used CREATE TABLE for table definition",
		missingMessage: "Missing CREATE TABLE statement",
	},
	{
		name:           "insert_statement",
		keywords:       []string{"INSERT INTO"},
		successScore:   10,
		failurePenalty: 15,
		successMessage: "Used INSERT INTO for data insertion",
		missingMessage: "Missing INSERT INTO statement",
	},
	{
		name:           "where_clause",
		keywords:       []string{"WHERE"},
		successScore:   15,
		failurePenalty: 20,
		successMessage: "Used WHERE clause for filtering",
		missingMessage: "Missing WHERE clause for record filtering",
	},
	{
		name:           "join_operations",
		keywords:       []string{"JOIN", "INNER JOIN", "LEFT JOIN", "RIGHT JOIN"},
		successScore:   20,
		failurePenalty: 25,
		successMessage: "Used JOIN operations for table relationships",
		missingMessage: "Missing JOIN operations",
	},
	{
		name:           "group_by",
		keywords:       []string{"GROUP BY"},
		successScore:   15,
		failurePenalty: 20,
		successMessage: "Used GROUP BY for data aggregation",
		missingMessage: "Missing GROUP BY clause",
	},
	{
		name:           "order_by",
		keywords:       []string{"ORDER BY"},
		successScore:   10,
		failurePenalty: 10,
		successMessage: "Used ORDER BY for result sorting",
		missingMessage: "Missing ORDER BY clause",
	},
}

// MatchConstructs scans the submitted and expected SQL for the
// recognized constructs. The slice order is fixed so downstream
// feedback is deterministic for identical inputs. Empty inputs simply
// produce "not found" for every construct.
func MatchConstructs(userSQL, expectedSQL string) []ConstructCheck {
	userUpper := strings.ToUpper(userSQL)
	expectedUpper := strings.ToUpper(expectedSQL)

	checks := make([]ConstructCheck, 0, len(constructDefs))
	for _, def := range constructDefs {
		checks = append(checks, ConstructCheck{
			Name:           def.name,
			Found:          containsAny(userUpper, def.keywords),
			Expected:       containsAny(expectedUpper, def.keywords),
			SuccessScore:   def.successScore,
			FailurePenalty: def.failurePenalty,
			SuccessMessage: def.successMessage,
			MissingMessage: def.missingMessage,
		})
	}
	return checks
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
