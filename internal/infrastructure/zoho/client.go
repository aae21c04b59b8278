// Package zoho implements the HTTP client for the downstream Zoho connector
// service.
package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/core-platform/launchpad/internal/api/metrics"
	"github.com/core-platform/launchpad/internal/core/domain"
)

const requestTimeout = 10 * time.Second

// Client talks to the Zoho connector. Any failure, including timeouts and
// non-2xx responses, is wrapped in domain.ErrUpstream so callers can answer
// 502 without inspecting the cause.
type Client struct {
	baseURL     string
	forwardAuth bool
	httpClient  *http.Client
	log         zerolog.Logger
}

func NewClient(baseURL string, forwardAuth bool, log zerolog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		forwardAuth: forwardAuth,
		httpClient:  &http.Client{Timeout: requestTimeout},
		log:         log,
	}
}

func (c *Client) GetLeads(ctx context.Context, authToken string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, "/leads", "leads", nil, authToken)
}

func (c *Client) GetAccounts(ctx context.Context, authToken string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, "/accounts", "accounts", nil, authToken)
}

func (c *Client) CreateLead(ctx context.Context, lead json.RawMessage, authToken string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, "/create-lead", "create-lead", lead, authToken)
}

// Ping probes the connector's health endpoint. The caller bounds the wait
// through ctx; the health check uses a 5s deadline.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.request(ctx, http.MethodGet, "/health", "health", nil, "")
	return err
}

func (c *Client) request(ctx context.Context, method, path, endpoint string, body json.RawMessage, authToken string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.forwardAuth && authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ZohoRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("zoho request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ZohoRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		c.log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("zoho request returned error status")
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ZohoRequestDuration.WithLabelValues(endpoint, "error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrUpstream, err)
	}

	metrics.ZohoRequestDuration.WithLabelValues(endpoint, "ok").Observe(time.Since(start).Seconds())
	return json.RawMessage(data), nil
}
