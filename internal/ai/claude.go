package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
	maxTokens         = 1024
)

// journal assistant persona shared by chat and narrative generation
const systemPrompt = "You are a reflective journaling assistant. You help users " +
	"understand their growth patterns and respond with concise, encouraging, " +
	"actionable guidance."

// ClaudeClient is a thin passthrough to the Anthropic messages API. One
// HTTP call per operation; failures surface to the caller untouched.
type ClaudeClient struct {
	APIKey string
	Model  string
	HTTP   *http.Client
}

// NewClaudeClient builds a client for the given key and model. The HTTP
// client carries a request timeout so a hung provider stalls only the
// requesting connection.
func NewClaudeClient(apiKey, model string) *ClaudeClient {
	return &ClaudeClient{
		APIKey: apiKey,
		Model:  model,
		HTTP:   &http.Client{Timeout: 60 * time.Second},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateNarrative sends the analysis prompt and returns the model's text.
func (c *ClaudeClient) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt)
}

// Chat answers a single user message. userID is accepted for parity with
// providers that keep per-user context; the Anthropic API itself is
// stateless so it is unused here.
func (c *ClaudeClient) Chat(ctx context.Context, userID, message string) (string, error) {
	return c.complete(ctx, message)
}

func (c *ClaudeClient) complete(ctx context.Context, content string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic read response: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("anthropic decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("anthropic: %s: %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("anthropic: unexpected status %d", resp.StatusCode)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic: response contained no text block")
}
