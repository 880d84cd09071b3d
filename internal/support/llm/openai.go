package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VisionOra/support-agent-test-task/internal/support/domain"
)

// Generator is the single capability the composer needs from a text-generation
// service. The composition root decides the concrete client; a nil Generator
// means knowledge-base-only mode.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userText string) (string, error)
}

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultModel     = "gpt-3.5-turbo"
	defaultMaxTokens = 200
	defaultTimeout   = 30 * time.Second

	// Moderate randomness for support answers.
	temperature = 0.7
)

// Config holds the OpenAI client settings. Zero values fall back to defaults.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// OpenAIClient calls an OpenAI-compatible chat completions endpoint. One
// attempt per call, bounded by the configured timeout; no retries.
type OpenAIClient struct {
	cfg  Config
	http *http.Client
}

// NewOpenAI builds a client from the given config.
func NewOpenAI(cfg Config) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &OpenAIClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate issues a single chat completion request with the system instruction
// and the raw user text. Every failure comes back as a *domain.GenerationError;
// the caller decides the fallback.
func (c *OpenAIClient) Generate(ctx context.Context, systemPrompt, userText string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", &domain.GenerationError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &domain.GenerationError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.GenerationError{Op: "call", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &domain.GenerationError{
			Op:  "call",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(detail)),
		}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &domain.GenerationError{Op: "decode", Err: err}
	}
	if len(out.Choices) == 0 {
		return "", &domain.GenerationError{Op: "decode", Err: fmt.Errorf("no choices in response")}
	}
	return out.Choices[0].Message.Content, nil
}
