package catalog

import (
	"regexp"
	"strings"
	"testing"

	"github.com/sql-tutor/backend/internal/models"
)

func TestDefaultModules(t *testing.T) {
	cat := Default()

	modules := cat.Modules()
	if len(modules) != 6 {
		t.Fatalf("len(Modules()) = %d, want 6", len(modules))
	}

	wantNames := map[int]string{
		1: "Data Definition and Data Manipulation Language",
		2: "Single Row Functions",
		3: "Operators and Group Functions",
		4: "Multiple Table Operations",
		5: "Subqueries",
		6: "Data Management and Views",
	}
	for _, m := range modules {
		if wantNames[m.ID] != m.Name {
			t.Errorf("module %d name = %q, want %q", m.ID, m.Name, wantNames[m.ID])
		}
		if m.Description == "" {
			t.Errorf("module %d has empty description", m.ID)
		}
	}
}

func TestModuleNameFallback(t *testing.T) {
	cat := Default()

	if got := cat.ModuleName(1); got != "Data Definition and Data Manipulation Language" {
		t.Errorf("ModuleName(1) = %q", got)
	}
	if got := cat.ModuleName(99); got != "General SQL" {
		t.Errorf("ModuleName(99) = %q, want General SQL", got)
	}
}

func TestPickMintsQuestionID(t *testing.T) {
	cat := Default()
	idPattern := regexp.MustCompile(`^1_easy_[1-9][0-9]{3}$`)

	for i := 0; i < 20; i++ {
		qid, tpl, ok := cat.Pick(1, models.DifficultyEasy)
		if !ok {
			t.Fatal("Pick(1, easy) returned no template")
		}
		if !idPattern.MatchString(qid) {
			t.Errorf("question ID %q does not match <module>_<difficulty>_<1000-9999>", qid)
		}
		if tpl.Question == "" || tpl.ExpectedSQL == "" {
			t.Error("picked template has empty question or solution")
		}
	}
}

func TestPickUnknownModule(t *testing.T) {
	cat := Default()
	if _, _, ok := cat.Pick(5, models.DifficultyHard); ok {
		t.Error("Pick(5, hard) = ok, want no template for module without curated questions")
	}
}

func TestParseQuestionID(t *testing.T) {
	tests := []struct {
		id             string
		wantModule     int
		wantDifficulty models.Difficulty
	}{
		{"1_easy_4213", 1, models.DifficultyEasy},
		{"3_medium_8800", 3, models.DifficultyMedium},
		{"6_hard_1000", 6, models.DifficultyHard},
		{"bogus", 1, models.DifficultyEasy},
		{"", 1, models.DifficultyEasy},
		{"2", 2, models.DifficultyEasy},
	}

	for _, tt := range tests {
		module, difficulty := ParseQuestionID(tt.id)
		if module != tt.wantModule || difficulty != tt.wantDifficulty {
			t.Errorf("ParseQuestionID(%q) = (%d, %s), want (%d, %s)",
				tt.id, module, difficulty, tt.wantModule, tt.wantDifficulty)
		}
	}
}

func TestResolveSmartMatch(t *testing.T) {
	cat := Default()

	// Module 1 easy has two templates; an UPDATE submission should land
	// on the library book question.
	ctx := cat.Resolve("1_easy_5555", "UPDATE books SET status = 'damaged' WHERE book_id = 42;")
	if !strings.Contains(ctx.QuestionText, "Public Library System") {
		t.Errorf("UPDATE submission resolved to wrong template: %q", ctx.Scenario)
	}
	if !strings.Contains(ctx.ExpectedSQL, "UPDATE books") {
		t.Errorf("resolved solution mismatch:\n%s", ctx.ExpectedSQL)
	}

	// A CREATE TABLE submission should land on the restaurant question.
	ctx = cat.Resolve("1_easy_5555", "CREATE TABLE restaurants (restaurant_id INT PRIMARY KEY);")
	if !strings.Contains(ctx.QuestionText, "Food Delivery Startup") {
		t.Errorf("CREATE TABLE submission resolved to wrong template: %q", ctx.Scenario)
	}
}

func TestResolveUnknownQuestion(t *testing.T) {
	cat := Default()

	ctx := cat.Resolve("5_hard_9999", "SELECT 1")
	if ctx.ModuleName != "Subqueries" {
		t.Errorf("ModuleName = %q, want Subqueries", ctx.ModuleName)
	}
	if ctx.ExpectedSQL != "" {
		t.Errorf("ExpectedSQL = %q, want empty for generic context", ctx.ExpectedSQL)
	}
	if ctx.Scenario == "" || ctx.BusinessContext == "" {
		t.Error("generic context missing scenario or business context")
	}
}

func TestScenarioLabel(t *testing.T) {
	got := scenarioLabel("🍕 **Food Delivery Startup**: Create a table.", "General SQL")
	if !strings.Contains(got, "Food Delivery Startup") {
		t.Errorf("scenarioLabel = %q", got)
	}

	got = scenarioLabel("no markers here", "Subqueries")
	if got != "📊 Subqueries" {
		t.Errorf("scenarioLabel fallback = %q, want default emoji plus module name", got)
	}
}

func TestBusinessContextMatching(t *testing.T) {
	got := businessContext("🍕 **Food Delivery Startup**: stuff about restaurants")
	if got == "database operations and business logic" {
		t.Errorf("food delivery question fell through to default context")
	}

	got = businessContext("nothing recognizable")
	if got != "database operations and business logic" {
		t.Errorf("businessContext default = %q", got)
	}
}
