package metrics

import (
	"context"
	"time"
)

// Metrics is a snapshot of the library's size.
type Metrics struct {
	// Books is the total number of cataloged books
	Books int64 `json:"books"`

	// BooksByStatus maps reading status to the number of books in it
	BooksByStatus map[string]int64 `json:"books_by_status"`

	// RatedBooks counts books that carry a rating
	RatedBooks int64 `json:"rated_books"`

	// Collections is the number of collections
	Collections int64 `json:"collections"`

	// Memberships is the number of book/collection edges
	Memberships int64 `json:"memberships"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting library metrics.
type Collector interface {
	// Collect gathers every count in one snapshot
	Collect(ctx context.Context) (Metrics, error)

	// GetStatusCounts returns the count of books by status
	GetStatusCounts(ctx context.Context) (map[string]int64, error)

	// GetRatedCount returns how many books have a rating
	GetRatedCount(ctx context.Context) (int64, error)

	// GetCollectionCount returns the number of collections
	GetCollectionCount(ctx context.Context) (int64, error)

	// GetMembershipCount returns the number of membership edges
	GetMembershipCount(ctx context.Context) (int64, error)
}
