package enrichment

import (
	"context"
	"time"
)

// ISBNProvider resolves a single ISBN. A nil record with a nil error means "not found".
type ISBNProvider interface {
	Name() string
	LookupISBN(ctx context.Context, isbn string) (*Record, error)
}

// Catalog runs free-text searches. An empty result is not an error.
type Catalog interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]Record, error)
}

// Cache stores resolved ISBN candidates. Implementations report a miss with ok == false.
type Cache interface {
	Get(ctx context.Context, isbn string) (c Candidate, ok bool, err error)
	Set(ctx context.Context, isbn string, c Candidate) error
}

// Outcomes reported to an Observer.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Operations reported to an Observer.
const (
	OperationISBN   = "isbn"
	OperationSearch = "search"
	OperationCache  = "cache"
)

// Observer is told about every provider and cache call.
type Observer interface {
	ProviderCall(ctx context.Context, provider, operation, outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ProviderCall(context.Context, string, string, string, time.Duration) {}
