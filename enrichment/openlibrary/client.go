// Package openlibrary resolves ISBNs through the Open Library Books API.
package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/enrichment/internal/fetch"
	"github.com/rs/zerolog"
)

const (
	Name           = "openlibrary"
	DefaultBaseURL = "https://openlibrary.org"
)

type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
}

type Client struct {
	baseURL string
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

// LookupISBN returns nil, nil when Open Library has no entry for the ISBN.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*enrichment.Record, error) {
	key := "ISBN:" + isbn
	params := url.Values{}
	params.Set("bibkeys", key)
	params.Set("jscmd", "data")
	params.Set("format", "json")

	var resp map[string]bookData
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/api/books?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("openlibrary isbn %s: %w", isbn, err)
	}

	data, ok := resp[key]
	if !ok {
		return nil, nil
	}
	rec := data.record()
	return &rec, nil
}
