package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ManahilHabibb/DraftAI/internal/log"
)

const (
	openaiDefaultBaseURL = "https://api.openai.com"
	openaiModel          = "gpt-3.5-turbo"
	systemPrompt         = "You are a helpful writing assistant. Generate creative and engaging content based on the user's prompt."
)

// NewGenerator returns the OpenAI-backed generator when an API key is
// configured, otherwise the mock generator so the app works end to end
// without credentials.
func NewGenerator(apiKey string) Generator {
	if strings.TrimSpace(apiKey) == "" {
		log.Info(log.CatServer, "no API key configured, using mock generator")
		return &MockGenerator{}
	}
	return &OpenAIGenerator{apiKey: apiKey, baseURL: openaiDefaultBaseURL, client: &http.Client{}}
}

// MockGenerator produces deterministic placeholder text.
type MockGenerator struct{}

// Generate returns a canned response that echoes the prompt.
func (g *MockGenerator) Generate(_ context.Context, prompt string, _ int) (string, error) {
	return fmt.Sprintf("Mock AI response for: '%s'. Configure an API key for real AI generation.", prompt), nil
}

// OpenAIGenerator proxies generation to an OpenAI-compatible chat
// completions API.
type OpenAIGenerator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIGenerator returns a generator against a specific base URL.
// Useful for compatible providers and tests.
func NewOpenAIGenerator(apiKey, baseURL string) *OpenAIGenerator {
	return &OpenAIGenerator{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends one chat completion request and returns the trimmed text.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := chatRequest{
		Model: openaiModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode, detail)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
