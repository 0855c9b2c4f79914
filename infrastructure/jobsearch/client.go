// Package jobsearch implements the insight.JobSearchClient port against an
// Adzuna-style job search API.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "journeymap/pkg/errors"
	"journeymap/pkg/httpx"

	"go.uber.org/zap"
)

// Config holds the connection settings for the job search API.
type Config struct {
	BaseURL string
	AppID   string
	AppKey  string
	Timeout time.Duration
}

// Client queries job posting counts per skill keyword.
type Client struct {
	cfg    Config
	http   *http.Client
	retry  httpx.RetryConfig
	logger *zap.Logger
}

// NewClient creates a job search client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		retry:  httpx.DefaultRetryConfig(),
		logger: logger,
	}
}

type countResponse struct {
	Count int `json:"count"`
}

// CountPostings returns how many current job postings mention the skill.
func (c *Client) CountPostings(ctx context.Context, skill string) (int, error) {
	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("what", skill)
	q.Set("content-type", "application/json")
	endpoint := c.cfg.BaseURL + "?" + q.Encode()

	raw, err := httpx.Do(ctx, c.http, c.retry, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return 0, apperrors.NewUpstreamError("jobsearch", err)
	}

	var resp countResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, apperrors.NewUpstreamError("jobsearch", fmt.Errorf("decode response: %w", err))
	}

	c.logger.Debug("job postings counted",
		zap.String("skill", skill),
		zap.Int("count", resp.Count))
	return resp.Count, nil
}
