package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/saikothasan/neno/internal/config"
	"github.com/saikothasan/neno/internal/metrics"
	"github.com/saikothasan/neno/internal/models"
)

const (
	outcomeOK         = "ok"
	outcomeTimeout    = "timeout"
	outcomeConnection = "connection_error"
	outcomeStatus     = "upstream_status"
)

// Client forwards generation requests to the external name API. It keeps no
// state between calls and never retries.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the default transport, mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

func NewClient(logger *slog.Logger, cfg config.UpstreamConfig, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid upstream url %q: %w", cfg.URL, err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("upstream timeout must be positive, got %s", cfg.Timeout)
	}

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{},
		endpoint:   cfg.URL,
		timeout:    cfg.Timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch validates req, performs exactly one GET against the upstream and
// returns the response body untouched. Normalization is left to the caller.
func (c *Client) Fetch(ctx context.Context, req *models.GenerationRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache, no-store")
	httpReq.Header.Set("Pragma", "no-cache")

	start := time.Now()
	kind := string(req.Type)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, kind, start, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.UpstreamRequest(outcomeStatus, kind, time.Since(start))
		c.logger.Warn("upstream returned non-2xx status",
			"status", resp.StatusCode, "type", kind)
		return nil, &models.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, kind, start, err)
	}

	metrics.UpstreamRequest(outcomeOK, kind, time.Since(start))
	c.logger.Debug("upstream call finished",
		"type", kind, "bytes", len(body), "duration", time.Since(start))
	return body, nil
}

// buildURL appends query parameters in a fixed order: type, count,
// platform, then theme and purpose when set.
func (c *Client) buildURL(req *models.GenerationRequest) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid upstream url: %w", err)
	}

	// url.Values.Encode sorts keys, so the query is assembled by hand.
	params := [][2]string{
		{"type", string(req.Type)},
		{"count", strconv.Itoa(*req.Count)},
		{"platform", req.ResolvePlatform()},
	}
	if req.Theme != "" {
		params = append(params, [2]string{"theme", req.Theme})
	}
	if req.Purpose != "" {
		params = append(params, [2]string{"purpose", req.Purpose})
	}

	query := u.RawQuery
	for _, p := range params {
		if query != "" {
			query += "&"
		}
		query += url.QueryEscape(p[0]) + "=" + url.QueryEscape(p[1])
	}
	u.RawQuery = query
	return u.String(), nil
}

func (c *Client) transportError(ctx context.Context, kind string, start time.Time, err error) error {
	duration := time.Since(start)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		metrics.UpstreamRequest(outcomeTimeout, kind, duration)
		c.logger.Warn("upstream call timed out", "type", kind, "timeout", c.timeout)
		return models.ErrTimeout
	}

	metrics.UpstreamRequest(outcomeConnection, kind, duration)
	c.logger.Error("upstream call failed", "type", kind, "error", err)
	return fmt.Errorf("%w: %v", models.ErrConnection, err)
}
