// Package dbtest provides database fixtures for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/marcelsud/bookshelf/internal/database"
	"github.com/stretchr/testify/require"
)

// NewSQLite opens a migrated SQLite database in a temp dir, closed on cleanup.
// A file is used instead of :memory: so every pooled connection sees the same data.
func NewSQLite(tb testing.TB) *sql.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "library.db")
	db, err := database.OpenSQLite(context.Background(), path)
	require.NoError(tb, err)

	tb.Cleanup(func() { db.Close() })
	return db
}

// InsertBook inserts a minimal book row and returns its id.
func InsertBook(tb testing.TB, db *sql.DB, title, author string) int64 {
	tb.Helper()

	res, err := db.Exec(`INSERT INTO books (title, author) VALUES (?, ?)`, title, author)
	require.NoError(tb, err)
	id, err := res.LastInsertId()
	require.NoError(tb, err)
	return id
}

// CountEdges returns how many memberships reference the book or the collection.
func CountEdges(tb testing.TB, db *sql.DB, query string, id int64) int {
	tb.Helper()

	var n int
	require.NoError(tb, db.QueryRow(query, id).Scan(&n))
	return n
}
