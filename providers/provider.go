package providers

import (
	"fmt"
	"time"
)

// Supported provider implementations.
const (
	OpenLibrary = "openlibrary"
	GoogleBooks = "googlebooks"
)

// maxResultsLimit is the largest page Google Books accepts.
const maxResultsLimit = 40

/* Provider is one metadata source configuration.
 * Name selects the implementation; Role says where it sits in the ISBN chain.
 */
type Provider struct {
	Name              string
	Role              Role
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
	MaxResults        int // search page size, googlebooks only
}

// Validate checks if the provider configuration is valid
func (p *Provider) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Name != OpenLibrary && p.Name != GoogleBooks {
		return fmt.Errorf("unknown provider %q (expected %s or %s)", p.Name, OpenLibrary, GoogleBooks)
	}
	if err := p.Role.Validate(); err != nil {
		return fmt.Errorf("invalid role for provider %s: %w", p.Name, err)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative for provider %s", p.Name)
	}
	if p.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute cannot be negative for provider %s", p.Name)
	}
	if p.Burst < 0 {
		return fmt.Errorf("burst cannot be negative for provider %s", p.Name)
	}
	if p.MaxResults < 0 || p.MaxResults > maxResultsLimit {
		return fmt.Errorf("max_results must be between 0 and %d for provider %s (got %d)", maxResultsLimit, p.Name, p.MaxResults)
	}
	if p.MaxResults > 0 && p.Name != GoogleBooks {
		return fmt.Errorf("max_results only applies to %s (set on %s)", GoogleBooks, p.Name)
	}
	return nil
}

// Searchable reports whether the provider can serve free-text search.
func (p *Provider) Searchable() bool {
	return p.Name == GoogleBooks
}
