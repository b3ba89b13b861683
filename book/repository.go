package book

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Reader.Select when no book has the id.
var ErrNotFound = errors.New("book not found")

/* Small interfaces: readers and writers are composed into Repository */

type Reader interface {
	Select(ctx context.Context, id int64) (Book, error)
	/* SelectAll returns books newest-id-first. An empty result is not an error. */
	SelectAll(ctx context.Context, filter Filter) ([]Book, error)
}

type Writer interface {
	Insert(ctx context.Context, book Book) (int64, error)
	/* Update applies only the patch's fields and returns the affected-row count (0 for an unknown id) */
	Update(ctx context.Context, id int64, patch Patch) (int64, error)
	/* Delete removes the book and its collection memberships, returning the affected-row count */
	Delete(ctx context.Context, id int64) (int64, error)
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
