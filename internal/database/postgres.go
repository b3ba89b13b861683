package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

/*
PostgreSQL differs from SQLite in a few places the schema cares about:
- BIGSERIAL instead of AUTOINCREMENT (sequences never hand out an id twice)
- ADD COLUMN IF NOT EXISTS, so no catalog inspection is needed
*/

var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT,
		cover TEXT,
		isbn TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		icon TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS book_collections (
		book_id BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		collection_id BIGINT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
		PRIMARY KEY (book_id, collection_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_collections_collection ON book_collections(collection_id)`,
}

// OpenPostgres opens a PostgreSQL connection pool with default settings (25, 5, 5 min).
func OpenPostgres(ctx context.Context, connectionString string) (*sql.DB, error) {
	return OpenPostgresWithPoolConfig(ctx, connectionString, 25, 5, 5)
}

// OpenPostgresWithPoolConfig opens a PostgreSQL connection pool and runs the migration.
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: idle connections kept in the pool
// maxLifeMinutes: how long a connection may be reused
func OpenPostgresWithPoolConfig(ctx context.Context, connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	if err := MigratePostgres(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// MigratePostgres creates missing tables and columns in one transaction.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range postgresTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	for _, c := range optionalColumns {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", c.table, c.name, c.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", c.table, c.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	return nil
}
