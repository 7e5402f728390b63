package catalog

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sql-tutor/backend/internal/models"
)

// Template is one curated business-scenario question. The question text
// carries a leading emoji and a bold scenario label the resolver pulls
// apart for feedback context.
type Template struct {
	Question    string
	ExpectedSQL string
	Hints       []string
}

// ModuleInfo describes one learning module.
type ModuleInfo struct {
	ID          int
	Name        string
	Description string
}

// Catalog is the immutable question-template catalog. It is built once
// at startup and injected wherever question context is resolved, so
// tests can substitute fixtures.
type Catalog struct {
	modules   []ModuleInfo
	questions map[string]map[models.Difficulty][]Template
}

const defaultModuleName = "General SQL"

func New(modules []ModuleInfo, questions map[string]map[models.Difficulty][]Template) *Catalog {
	return &Catalog{modules: modules, questions: questions}
}

// Modules returns the module table in order.
func (c *Catalog) Modules() []ModuleInfo {
	return c.modules
}

// ModuleName maps a module ID to its display name, defaulting to
// "General SQL" for unknown IDs.
func (c *Catalog) ModuleName(id int) string {
	for _, m := range c.modules {
		if m.ID == id {
			return m.Name
		}
	}
	return defaultModuleName
}

// Module looks up module metadata by ID.
func (c *Catalog) Module(id int) (ModuleInfo, bool) {
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return ModuleInfo{}, false
}

// Pick selects a random template for a module/difficulty pair, minting
// a fresh question ID of the form <module>_<difficulty>_<suffix>.
func (c *Catalog) Pick(moduleID int, difficulty models.Difficulty) (string, Template, bool) {
	templates := c.questions[c.ModuleName(moduleID)][difficulty]
	if len(templates) == 0 {
		return "", Template{}, false
	}
	qid := fmt.Sprintf("%d_%s_%d", moduleID, difficulty, 1000+rand.Intn(9000))
	return qid, templates[rand.Intn(len(templates))], true
}

// Templates returns every curated template for a module/difficulty pair.
func (c *Catalog) Templates(moduleID int, difficulty models.Difficulty) []Template {
	return c.questions[c.ModuleName(moduleID)][difficulty]
}

// ParseQuestionID extracts the module and difficulty embedded in a
// question ID, with the same lenient defaults Resolve uses.
func ParseQuestionID(questionID string) (int, models.Difficulty) {
	return parseQuestionID(questionID)
}

// Resolve recovers the business-scenario context for a question ID.
// When multiple templates exist for the module/difficulty pair, it
// guesses which one is being answered from keywords in the submitted
// SQL; ambiguous submissions fall back to the first template. Unknown
// IDs degrade to a generic context, so resolution never fails.
func (c *Catalog) Resolve(questionID, userSQL string) models.QuestionContext {
	moduleID, difficulty := parseQuestionID(questionID)
	moduleName := c.ModuleName(moduleID)

	templates := c.questions[moduleName][difficulty]
	if tpl, ok := matchTemplate(templates, userSQL); ok {
		return contextFromTemplate(tpl, moduleName)
	}

	return models.QuestionContext{
		Scenario:        "📊 " + moduleName,
		BusinessContext: fmt.Sprintf("module %d operations", moduleID),
		ModuleName:      moduleName,
	}
}

// parseQuestionID splits "<module>_<difficulty>_<suffix>" with lenient
// defaults: a non-numeric module falls back to 1, a missing difficulty
// to easy.
func parseQuestionID(questionID string) (int, models.Difficulty) {
	parts := strings.Split(questionID, "_")

	moduleID := 1
	if len(parts) > 0 {
		if n, err := strconv.Atoi(parts[0]); err == nil {
			moduleID = n
		}
	}

	difficulty := models.DifficultyEasy
	if len(parts) > 1 && parts[1] != "" {
		difficulty = models.Difficulty(parts[1])
	}

	return moduleID, difficulty
}

// matchTemplate applies the smart-match heuristic: an UPDATE submission
// prefers the library/book question, CREATE TABLE prefers the
// restaurant question, SELECT prefers employee/customer/sales
// scenarios. This can pick the wrong template for ambiguous
// submissions; that is accepted behavior, since the question ID carries
// no template key.
func matchTemplate(templates []Template, userSQL string) (Template, bool) {
	if len(templates) == 0 {
		return Template{}, false
	}

	userUpper := strings.ToUpper(userSQL)
	for _, tpl := range templates {
		questionUpper := strings.ToUpper(tpl.Question)
		switch {
		case strings.Contains(userUpper, "UPDATE") && strings.Contains(questionUpper, "BOOK"):
			return tpl, true
		case strings.Contains(userUpper, "CREATE TABLE") && strings.Contains(questionUpper, "RESTAURANT"):
			return tpl, true
		case strings.Contains(userUpper, "SELECT") &&
			(strings.Contains(questionUpper, "EMPLOYEE") ||
				strings.Contains(questionUpper, "CUSTOMER") ||
				strings.Contains(questionUpper, "SALES")):
			return tpl, true
		}
	}

	return templates[0], true
}

const scenarioEmoji = "🍕📚🛒🏢💰📊🎯🚚📈🏆🎨📋🔐"

func contextFromTemplate(tpl Template, moduleName string) models.QuestionContext {
	return models.QuestionContext{
		Scenario:        scenarioLabel(tpl.Question, moduleName),
		BusinessContext: businessContext(tpl.Question),
		QuestionText:    tpl.Question,
		ExpectedSQL:     tpl.ExpectedSQL,
		ModuleName:      moduleName,
		Hints:           tpl.Hints,
	}
}

// scenarioLabel builds "<emoji> <scenario name>" from the question
// text's leading emoji and first bold segment.
func scenarioLabel(questionText, moduleName string) string {
	name := moduleName
	if parts := strings.Split(questionText, "**"); len(parts) > 1 {
		name = parts[1]
	}

	emoji := "📊"
	for _, r := range questionText {
		if strings.ContainsRune(scenarioEmoji, r) {
			emoji = string(r)
		}
		break
	}

	return emoji + " " + name
}

var businessContexts = []struct {
	key     string
	context string
}{
	{"food delivery", "food delivery app database management"},
	{"library", "library system book and patron management"},
	{"e-commerce", "online store inventory and customer management"},
	{"corporate badge", "employee badge and access management"},
	{"payroll", "employee compensation and benefits calculation"},
	{"sales dashboard", "business analytics and performance tracking"},
	{"customer segmentation", "marketing and customer relationship management"},
	{"shipping", "logistics and order fulfillment operations"},
	{"product performance", "inventory optimization and sales analysis"},
	{"top performer", "human resources and performance evaluation"},
	{"inventory reorder", "supply chain and stock management"},
	{"customer dashboard", "customer service and account management"},
	{"data security", "compliance and data governance operations"},
}

func businessContext(questionText string) string {
	lower := strings.ToLower(questionText)
	for _, bc := range businessContexts {
		if strings.Contains(lower, bc.key) {
			return bc.context
		}
	}
	return "database operations and business logic"
}
