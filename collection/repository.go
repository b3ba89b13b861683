package collection

import (
	"context"
)

type Reader interface {
	/* SelectAll returns collections ordered by title, then id */
	SelectAll(ctx context.Context) ([]Collection, error)
	/* SelectByBook returns the collections containing the book, ordered by title, then id */
	SelectByBook(ctx context.Context, bookID int64) ([]Collection, error)
}

type Writer interface {
	Insert(ctx context.Context, c Collection) (int64, error)
	/* Delete removes the collection and its membership edges. Member books are kept. */
	Delete(ctx context.Context, id int64) (int64, error)
	/* AddMember inserts the edge or does nothing when it exists; returns 1 or 0 */
	AddMember(ctx context.Context, collectionID, bookID int64) (int64, error)
	/* RemoveMember deletes the edge if present; returns 1 or 0 */
	RemoveMember(ctx context.Context, collectionID, bookID int64) (int64, error)
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
