package cheatsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/sql-tutor/backend/internal/llm"
	"github.com/sql-tutor/backend/internal/models"
)

const exampleTemperature = 0.8

var scenarios = []string{
	"E-commerce Platform", "Hospital Management System", "School Administration",
	"Restaurant Chain", "Banking System", "Real Estate Agency", "Hotel Booking",
	"Inventory Management", "HR Management System", "Food Delivery App",
	"Library Management", "Fitness Center", "Travel Agency", "Insurance Company",
	"Social Media Platform", "Logistics Company", "Streaming Service",
}

type Service struct {
	store *Store
	llm   llm.Client
}

func NewService(store *Store, client llm.Client) *Service {
	return &Service{store: store, llm: client}
}

func (s *Service) List() ([]models.CheatSheetEntry, error) {
	return s.store.List()
}

func (s *Service) ByCategory(category string) ([]models.CheatSheetEntry, error) {
	return s.store.ByCategory(category)
}

func (s *Service) Search(term string) ([]models.CheatSheetEntry, error) {
	return s.store.Search(term)
}

// DynamicExample asks the LLM to illustrate a SQL command inside a
// randomly chosen business scenario. Every failure path degrades to a
// templated example, so the endpoint always returns something usable.
func (s *Service) DynamicExample(ctx context.Context, req models.DynamicExampleRequest) models.DynamicExample {
	scenario := scenarios[rand.Intn(len(scenarios))]

	if s.llm == nil {
		return fallbackExample(req, scenario, "")
	}

	prompt := llm.BuildExamplePrompt(req.Command, req.Syntax, req.Category, scenario)
	raw, err := s.llm.Generate(ctx, llm.QuestionSystemPrompt, prompt, exampleTemperature)
	if err != nil {
		log.Printf("[cheatsheet] dynamic example for %q: %v", req.Command, err)
		return fallbackExample(req, scenario, "")
	}

	var example models.DynamicExample
	if err := json.Unmarshal([]byte(extractJSON(raw)), &example); err != nil {
		return fallbackExample(req, scenario, raw)
	}
	if example.Scenario == "" {
		example.Scenario = scenario
	}
	return example
}

// fallbackExample builds a templated example. A non-empty rawResponse
// means the LLM answered but not in JSON; its prose is kept as the
// explanation.
func fallbackExample(req models.DynamicExampleRequest, scenario, rawResponse string) models.DynamicExample {
	if rawResponse != "" {
		explanation := rawResponse
		if runes := []rune(explanation); len(runes) > 200 {
			explanation = string(runes[:200]) + "..."
		}
		return models.DynamicExample{
			Scenario:         scenario,
			BusinessContext:  fmt.Sprintf("Working with %s database operations", scenario),
			TableDescription: fmt.Sprintf("Database tables for %s management", scenario),
			SQLExample:       fmt.Sprintf("%s example for %s", req.Command, scenario),
			Explanation:      explanation,
			SampleData:       fmt.Sprintf("Business data relevant to %s", scenario),
		}
	}

	sqlExample := req.Syntax
	if sqlExample == "" {
		sqlExample = fmt.Sprintf("%s query example", req.Command)
	}
	return models.DynamicExample{
		Scenario:         scenario,
		BusinessContext:  fmt.Sprintf("Database operations for %s", scenario),
		TableDescription: fmt.Sprintf("Standard %s database tables", scenario),
		SQLExample:       sqlExample,
		Explanation:      fmt.Sprintf("This %s query helps manage %s data efficiently", req.Command, scenario),
		SampleData:       fmt.Sprintf("Returns relevant %s information", scenario),
	}
}

func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if idx := strings.Index(cleaned, "```json"); idx >= 0 {
		cleaned = cleaned[idx+len("```json"):]
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
