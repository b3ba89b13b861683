package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/internal/row"
)

/*
PostgreSQL implementation of book.Repository.

Differences from the SQLite adapter:
- $1, $2 placeholders instead of ?
- RETURNING id instead of LastInsertId
*/

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Select fetches a book by id.
func (r *Repository) Select(ctx context.Context, id int64) (book.Book, error) {
	query := "SELECT " + row.Columns + " FROM books b WHERE b.id = $1"

	b, err := row.Scan(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// SelectAll lists books newest first, optionally only those in a collection.
func (r *Repository) SelectAll(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	query := "SELECT " + row.Columns + " FROM books b ORDER BY b.id DESC"
	var args []any
	if filter.CollectionID != nil {
		query = "SELECT " + row.Columns + " FROM books b " +
			"JOIN book_collections bc ON bc.book_id = b.id " +
			"WHERE bc.collection_id = $1 ORDER BY b.id DESC"
		args = append(args, *filter.CollectionID)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := row.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

// Insert stores a new book and returns the generated id.
func (r *Repository) Insert(ctx context.Context, b book.Book) (int64, error) {
	query := `
		INSERT INTO books (title, author, cover, isbn, description, rating, review, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		b.Title, b.Author, b.Cover, b.ISBN, b.Description, b.Rating, b.Review, b.Status.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting book: %w", err)
	}
	return id, nil
}

// Update sets exactly the patched columns.
func (r *Repository) Update(ctx context.Context, id int64, patch book.Patch) (int64, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return 0, book.ErrNoFields
	}

	assignments := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, c := range changes {
		col, err := row.Column(c.Field)
		if err != nil {
			return 0, err
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, c.StoreValue())
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE books SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating book: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

// Delete removes a book; its memberships go with it.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("deleting book: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
