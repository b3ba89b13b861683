// Package googlebooks searches the Google Books volumes API and resolves ISBNs through it.
package googlebooks

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/enrichment/internal/fetch"
	"github.com/rs/zerolog"
)

const (
	Name           = "googlebooks"
	DefaultBaseURL = "https://www.googleapis.com/books/v1"

	// maxResultsCap is the largest page the volumes API accepts.
	maxResultsCap = 40
)

type Options struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
}

type Client struct {
	baseURL string
	apiKey  string
	fetch   *fetch.Client
	logger  zerolog.Logger
}

func New(opts Options, logger zerolog.Logger) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	logger = logger.With().Str("provider", Name).Logger()
	return &Client{
		baseURL: base,
		apiKey:  opts.APIKey,
		fetch: fetch.New(fetch.Options{
			Timeout:           opts.Timeout,
			RequestsPerMinute: opts.RequestsPerMinute,
			Burst:             opts.Burst,
		}, logger),
		logger: logger,
	}
}

func (c *Client) Name() string {
	return Name
}

// LookupISBN returns the first volume matching the ISBN, or nil, nil.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*enrichment.Record, error) {
	resp, err := c.volumes(ctx, "isbn:"+isbn, 0)
	if err != nil {
		return nil, fmt.Errorf("googlebooks isbn %s: %w", isbn, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	rec := resp.Items[0].VolumeInfo.record()
	return &rec, nil
}

// Search returns up to limit volumes for a free-text query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]enrichment.Record, error) {
	resp, err := c.volumes(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("googlebooks search: %w", err)
	}

	c.logger.Debug().Str("query", query).Int("total", resp.TotalItems).Int("count", len(resp.Items)).Msg("search results")

	records := make([]enrichment.Record, 0, len(resp.Items))
	for _, item := range resp.Items {
		records = append(records, item.VolumeInfo.record())
	}
	return records, nil
}

func (c *Client) volumes(ctx context.Context, q string, limit int) (volumesResponse, error) {
	params := url.Values{}
	params.Set("q", q)
	if limit > 0 {
		params.Set("maxResults", strconv.Itoa(min(limit, maxResultsCap)))
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var resp volumesResponse
	err := c.fetch.GetJSON(ctx, c.baseURL+"/volumes?"+params.Encode(), &resp)
	return resp, err
}
