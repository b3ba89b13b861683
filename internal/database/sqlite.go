package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// sqliteTables is the base schema, in dependency order.
var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT,
		cover TEXT,
		isbn TEXT,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		icon TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS book_collections (
		book_id INTEGER NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		collection_id INTEGER NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
		PRIMARY KEY (book_id, collection_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_collections_collection ON book_collections(collection_id)`,
}

// sqlitePragmas are applied to every pooled connection through the DSN.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
}

// OpenSQLite opens the SQLite database at path, creating its directory if needed,
// and runs the schema migration.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open(DriverSQLite, sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// SQLite has a single writer; a small pool keeps readers concurrent.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	if err := MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func sqliteDSN(path string) string {
	params := make([]string, 0, len(sqlitePragmas))
	for _, p := range sqlitePragmas {
		params = append(params, "_pragma="+p)
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// MigrateSQLite creates missing tables and adds missing optional columns in one transaction.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range sqliteTables {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	for _, c := range optionalColumns {
		exists, err := sqliteColumnExists(ctx, tx, c.table, c.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.name, c.definition)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", c.table, c.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	return nil
}

func sqliteColumnExists(ctx context.Context, tx *sql.Tx, table, name string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspecting %s columns: %w", table, err)
	}
	return n > 0, nil
}
