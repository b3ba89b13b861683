package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLCollector implements the Collector interface over the library database.
// Queries are plain SQL understood by both sqlite and postgres.
type SQLCollector struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLCollector creates a new collector reading from db
func NewSQLCollector(db *sql.DB) *SQLCollector {
	return &SQLCollector{
		db:  db,
		now: time.Now,
	}
}

// Collect gathers all metrics from the database
func (c *SQLCollector) Collect(ctx context.Context) (Metrics, error) {
	statusCounts, err := c.GetStatusCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting status counts: %w", err)
	}

	rated, err := c.GetRatedCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting rated count: %w", err)
	}

	collections, err := c.GetCollectionCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting collection count: %w", err)
	}

	memberships, err := c.GetMembershipCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting membership count: %w", err)
	}

	var total int64
	for _, n := range statusCounts {
		total += n
	}

	return Metrics{
		Books:         total,
		BooksByStatus: statusCounts,
		RatedBooks:    rated,
		Collections:   collections,
		Memberships:   memberships,
		Timestamp:     c.now(),
	}, nil
}

// GetStatusCounts returns the count of books per status.
// Every known status is present, zero when no book has it.
func (c *SQLCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	counts := map[string]int64{
		"unread":  0,
		"reading": 0,
		"read":    0,
	}

	rows, err := c.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM books GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (c *SQLCollector) GetRatedCount(ctx context.Context) (int64, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM books WHERE rating IS NOT NULL`)
}

func (c *SQLCollector) GetCollectionCount(ctx context.Context) (int64, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM collections`)
}

func (c *SQLCollector) GetMembershipCount(ctx context.Context) (int64, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM book_collections`)
}

func (c *SQLCollector) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := c.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
