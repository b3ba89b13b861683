// Package fetch is the rate-limited JSON GET client shared by the metadata providers.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "bookshelf/1.0"

	// maxBody caps how much of a response is read.
	maxBody = 4 << 20
)

var (
	ErrRateLimited = errors.New("rate limited by provider")
	ErrServer      = errors.New("provider server error")
	ErrStatus      = errors.New("unexpected provider status")
)

type Options struct {
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
	UserAgent         string
}

type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    zerolog.Logger
}

// New builds a client. RequestsPerMinute <= 0 disables rate limiting.
func New(opts Options, logger zerolog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		http:      &http.Client{Timeout: opts.Timeout},
		limiter:   rate.NewLimiter(limit, burst),
		userAgent: opts.UserAgent,
		logger:    logger,
	}
}

// GetJSON waits for the limiter, performs a GET and decodes a 200 response into dest.
func (c *Client) GetJSON(ctx context.Context, url string, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", req.URL.Redacted()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("provider response")

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(dest); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
