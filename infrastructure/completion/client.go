// Package completion implements the insight.CompletionClient port against an
// OpenAI-compatible chat completions API.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "journeymap/pkg/errors"
	"journeymap/pkg/httpx"

	"go.uber.org/zap"
)

// defaultTemperature keeps scoring replies stable across identical prompts.
const defaultTemperature = 0.2

// Config holds the connection settings for the completions API.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the chat completions endpoint with retries.
type Client struct {
	cfg    Config
	http   *http.Client
	retry  httpx.RetryConfig
	logger *zap.Logger
}

// NewClient creates a completion client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		retry:  httpx.DefaultRetryConfig(),
		logger: logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt and returns the model's reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", err
	}

	url := c.cfg.BaseURL + "/chat/completions"
	raw, err := httpx.Do(ctx, c.http, c.retry, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		return req, nil
	})
	if err != nil {
		return "", apperrors.NewUpstreamError("completions", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", apperrors.NewUpstreamError("completions", fmt.Errorf("decode response: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewUpstreamError("completions", fmt.Errorf("empty choices"))
	}

	c.logger.Debug("completion received",
		zap.String("model", c.cfg.Model),
		zap.Int("prompt_len", len(prompt)))
	return resp.Choices[0].Message.Content, nil
}
