// Package database opens the relational store and brings its schema up to date.
//
// Initialization is safe to repeat against an existing database: tables are created
// only when missing and optional columns are added only when the live table lacks them.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// column is an optional column introduced after the first schema version.
type column struct {
	table      string
	name       string
	definition string
}

// optionalColumns lists columns added over time, in the order they were introduced.
var optionalColumns = []column{
	{table: "books", name: "rating", definition: "INTEGER"},
	{table: "books", name: "review", definition: "TEXT"},
	{table: "books", name: "status", definition: "TEXT NOT NULL DEFAULT 'unread'"},
}

// Open opens and migrates a database for the given driver.
// dsn is a file path for sqlite and a connection string for postgres.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	}
	return nil, fmt.Errorf("unsupported database driver: %q", driver)
}
