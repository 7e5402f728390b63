package llm

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// requestTimeout bounds every outbound completion call so a slow model
// cannot stall an evaluation request.
const requestTimeout = 30 * time.Second

// Client is the interface both completion implementations satisfy.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// NewFromEnv selects the completion backend. Returns nil when no
// backend is configured; callers treat a nil client as "local
// evaluation only".
func NewFromEnv() Client {
	if os.Getenv("MOCK_LLM") == "true" {
		log.Println("LLM using mock responses")
		return NewMockClient()
	}

	if os.Getenv("USE_CLI_LLM") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		log.Println("LLM using Claude CLI (local plan)")
		return NewCLIClient(cliPath)
	}

	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		log.Println("LLM not configured, local heuristic evaluation only")
		return nil
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	log.Println("LLM using Anthropic API:", model)
	return NewAPIClient(model)
}

// ── APIClient (Anthropic SDK) ──────────────────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   2048,
		Temperature: param.NewOpt(temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in API response")
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(1<<uint(attempt)) * time.Second):
			}
			log.Printf("Retrying Anthropic API call (attempt %d)", attempt+1)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient (Local Development) ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	return mockResponse(userPrompt), nil
}
