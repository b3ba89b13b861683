// Package row maps books onto SQL rows for the relational adapters.
package row

import (
	"database/sql"
	"fmt"

	"github.com/marcelsud/bookshelf/book"
)

// Columns is the select list every Scan call expects, aliased on b.
const Columns = `b.id, b.title, b.author, b.cover, b.isbn, b.description, b.rating, b.review, b.status`

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Column maps a patchable field onto its column name. Column names never come from input.
func Column(f book.Field) (string, error) {
	switch f {
	case book.FieldCover:
		return "cover", nil
	case book.FieldISBN:
		return "isbn", nil
	case book.FieldDescription:
		return "description", nil
	case book.FieldRating:
		return "rating", nil
	case book.FieldReview:
		return "review", nil
	case book.FieldStatus:
		return "status", nil
	}
	return "", fmt.Errorf("%w: %s", book.ErrUnknownField, f)
}

// Scan reads one book selected with Columns.
func Scan(s Scanner) (book.Book, error) {
	var (
		b                                book.Book
		author                           sql.NullString
		cover, isbn, description, review sql.NullString
		rating                           sql.NullInt64
		status                           string
	)
	if err := s.Scan(&b.ID, &b.Title, &author, &cover, &isbn, &description, &rating, &review, &status); err != nil {
		return book.Book{}, err
	}
	b.Author = author.String
	b.Cover = nullString(cover)
	b.ISBN = nullString(isbn)
	b.Description = nullString(description)
	b.Review = nullString(review)
	if rating.Valid {
		n := int(rating.Int64)
		b.Rating = &n
	}
	b.Status = book.NewStatus(status)
	return b, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
