//go:build integration

package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/marcelsud/bookshelf/internal/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
PostgreSQL fixtures backed by a real container. Needs a Docker daemon.

	go test -tags=integration ./...
*/

const postgresImage = "postgres:16-alpine"

// NewPostgres starts a throwaway PostgreSQL, applies the schema and returns
// a pool. The container is terminated when the test ends.
func NewPostgres(tb testing.TB) *sql.DB {
	tb.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("bookshelf"),
		postgres.WithUsername("bookshelf"),
		postgres.WithPassword("bookshelf"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = ctr.Terminate(ctx) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(tb, err)

	db, err := database.OpenPostgres(ctx, dsn)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })

	return db
}

// Reset empties the library and restarts id sequences, so ids start at 1 again.
func Reset(tb testing.TB, db *sql.DB) {
	tb.Helper()

	_, err := db.Exec(`TRUNCATE TABLE book_collections, collections, books RESTART IDENTITY CASCADE`)
	require.NoError(tb, err)
}
