// Package api implements the HTTP client for the remote draft store and
// the text generation service. All endpoints share one configured base URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ManahilHabibb/DraftAI/internal/draft"
	"github.com/ManahilHabibb/DraftAI/internal/log"
)

// Client talks JSON over HTTP to the draft server. It deliberately sets no
// timeout of its own; transport-level defaults apply.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the server at baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type draftPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// ListDrafts fetches the full draft list.
func (c *Client) ListDrafts(ctx context.Context) ([]draft.Draft, error) {
	var drafts []draft.Draft
	if err := c.do(ctx, http.MethodGet, "/api/drafts", nil, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// CreateDraft persists a new draft and returns the server's copy with its
// assigned id and timestamps.
func (c *Client) CreateDraft(ctx context.Context, title, content string) (draft.Draft, error) {
	var d draft.Draft
	body := draftPayload{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/drafts", body, &d); err != nil {
		return draft.Draft{}, err
	}
	return d, nil
}

// UpdateDraft replaces the draft's title and content and returns the
// server's copy with its refreshed updated_at.
func (c *Client) UpdateDraft(ctx context.Context, id, title, content string) (draft.Draft, error) {
	var d draft.Draft
	body := draftPayload{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPut, "/api/drafts/"+id, body, &d); err != nil {
		return draft.Draft{}, err
	}
	return d, nil
}

// DeleteDraft removes the draft with the given id.
func (c *Client) DeleteDraft(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/drafts/"+id, nil, nil)
}

// GenerateText requests generated text for prompt from the generation service.
func (c *Client) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var resp generateResponse
	body := generateRequest{Prompt: prompt, MaxTokens: maxTokens}
	if err := c.do(ctx, http.MethodPost, "/api/ai/generate", body, &resp); err != nil {
		return "", err
	}
	return resp.GeneratedText, nil
}

// Health pings the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// do sends one JSON request and decodes the response into out (when non-nil).
// Non-2xx statuses are returned as errors carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug(log.CatAPI, "request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
