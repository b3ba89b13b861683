package providers

import (
	"fmt"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/enrichment/googlebooks"
	"github.com/marcelsud/bookshelf/enrichment/openlibrary"
	"github.com/rs/zerolog"
)

func build(p *Provider, logger zerolog.Logger) (enrichment.ISBNProvider, error) {
	switch p.Name {
	case OpenLibrary:
		return openlibrary.New(openlibrary.Options{
			BaseURL:           p.BaseURL,
			Timeout:           p.Timeout,
			RequestsPerMinute: p.RequestsPerMinute,
			Burst:             p.Burst,
		}, logger), nil
	case GoogleBooks:
		return googlebooks.New(googlebooks.Options{
			BaseURL:           p.BaseURL,
			APIKey:            p.APIKey,
			Timeout:           p.Timeout,
			RequestsPerMinute: p.RequestsPerMinute,
			Burst:             p.Burst,
		}, logger), nil
	}
	return nil, fmt.Errorf("unknown provider %q", p.Name)
}

// NewResolver wires the configured providers into a resolver.
// The first searchable provider serves free-text search.
func NewResolver(l *Loader, logger zerolog.Logger, opts ...enrichment.Option) (*enrichment.Resolver, error) {
	var (
		primary enrichment.ISBNProvider
		wiring  []enrichment.Option
	)

	for _, p := range l.List() {
		c, err := build(p, logger)
		if err != nil {
			return nil, err
		}
		switch p.Role {
		case Primary:
			primary = c
		case Secondary:
			wiring = append(wiring, enrichment.WithSecondary(c))
		}
		if catalog, ok := c.(enrichment.Catalog); ok && p.Searchable() {
			wiring = append(wiring, enrichment.WithCatalog(catalog))
			if p.MaxResults > 0 {
				wiring = append(wiring, enrichment.WithSearchLimit(p.MaxResults))
			}
		}
	}

	if primary == nil {
		return nil, fmt.Errorf("no primary provider configured")
	}

	wiring = append(wiring, enrichment.WithLogger(logger))
	return enrichment.NewResolver(primary, append(wiring, opts...)...), nil
}
