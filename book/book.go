package book

import "strings"

/* Book represents a cataloged book as the business sees it.
 * Optional columns are pointers so "absent" and "empty" stay distinct.
 */
type Book struct {
	ID          int64
	Title       string
	Author      string
	Cover       *string
	ISBN        *string
	Description *string
	Rating      *int
	Review      *string
	Status      Status
}

// Draft holds the fields accepted when a book is created.
// Title and author are required; status defaults to unread.
type Draft struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Cover       *string `json:"cover"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=unread reading read"`
}

// Normalize trims the required text fields so whitespace-only values count as missing.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Author = strings.TrimSpace(d.Author)
	d.Status = strings.TrimSpace(d.Status)
	return d
}

// Book builds the record to insert. Call after validation.
func (d Draft) Book() Book {
	status := Unread
	if d.Status != "" {
		status = NewStatus(d.Status)
	}
	return Book{
		Title:       d.Title,
		Author:      d.Author,
		Cover:       d.Cover,
		ISBN:        d.ISBN,
		Description: d.Description,
		Status:      status,
	}
}

// Filter narrows a book listing. A nil CollectionID lists every book.
type Filter struct {
	CollectionID *int64
}
