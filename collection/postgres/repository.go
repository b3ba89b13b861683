package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/collection/internal/row"
)

/* PostgreSQL implementation of collection.Repository.
 * Edges are unique on (book_id, collection_id); ON CONFLICT DO NOTHING makes re-adding a no-op.
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
		WHERE bc.book_id = $1
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
	var id int64
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO collections (title, icon) VALUES ($1, $2) RETURNING id`, c.Title, c.Icon).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting collection: %w", err)
	}
	return id, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, "deleting collection", `DELETE FROM collections WHERE id = $1`, id)
}

func (r *Repository) AddMember(ctx context.Context, collectionID, bookID int64) (int64, error) {
	return r.exec(ctx, "adding member",
		`INSERT INTO book_collections (book_id, collection_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, bookID, collectionID)
}

func (r *Repository) RemoveMember(ctx context.Context, collectionID, bookID int64) (int64, error) {
	return r.exec(ctx, "removing member",
		`DELETE FROM book_collections WHERE book_id = $1 AND collection_id = $2`, bookID, collectionID)
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
