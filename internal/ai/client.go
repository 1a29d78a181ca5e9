// Package ai implements the language-model collaborators of the intake
// core: gap classification, follow-up question generation and advice report
// writing. Every operation degrades to a safe default when the API is not
// configured or a call fails.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"intakeflow/internal/config"
)

// Client wraps the OpenAI API with the per-task model configuration
type Client struct {
	cfg *config.AIConfig
	api *openai.Client
}

// NewClient creates a new AI client
func NewClient(cfg *config.AIConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}
	return &Client{
		cfg: cfg,
		api: openai.NewClientWithConfig(apiCfg),
	}
}

// Enabled reports whether real API calls are configured
func (c *Client) Enabled() bool {
	return c.cfg.IsEnabled()
}

// complete runs a single chat completion and returns the raw content
func (c *Client) complete(ctx context.Context, model, systemPrompt, userPrompt string, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: c.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences some models wrap JSON in
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
