package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/collection/internal/row"
)

/* SQLite implementation of collection.Repository.
 * Edges are unique on (book_id, collection_id); INSERT OR IGNORE makes re-adding a no-op.
 */

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) SelectAll(ctx context.Context) ([]collection.Collection, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+row.Columns+` FROM collections c ORDER BY c.title, c.id`)
	if err != nil {
		return nil, fmt.Errorf("selecting collections: %w", err)
	}
	all, err := row.ScanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning collections: %w", err)
	}
	return all, nil
}

func (r *Repository) SelectByBook(ctx context.Context, bookID int64) ([]collection.Collection, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+row.Columns+` FROM collections c
		JOIN book_collections bc ON bc.collection_id = c.id
		WHERE bc.book_id = ?
		ORDER BY c.title, c.id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("selecting book collections: %w", err)
	}
	all, err := row.ScanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning collections: %w", err)
	}
	return all, nil
}

func (r *Repository) Insert(ctx context.Context, c collection.Collection) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `INSERT INTO collections (title, icon) VALUES (?, ?)`, c.Title, c.Icon)
	if err != nil {
		return 0, fmt.Errorf("inserting collection: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert ID: %w", err)
	}
	return id, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, "deleting collection", `DELETE FROM collections WHERE id = ?`, id)
}

func (r *Repository) AddMember(ctx context.Context, collectionID, bookID int64) (int64, error) {
	return r.exec(ctx, "adding member",
		`INSERT OR IGNORE INTO book_collections (book_id, collection_id) VALUES (?, ?)`, bookID, collectionID)
}

func (r *Repository) RemoveMember(ctx context.Context, collectionID, bookID int64) (int64, error) {
	return r.exec(ctx, "removing member",
		`DELETE FROM book_collections WHERE book_id = ? AND collection_id = ?`, bookID, collectionID)
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

func (r *Repository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}
