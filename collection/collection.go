package collection

import "strings"

// Collection is a named, user-defined grouping of books.
type Collection struct {
	ID    int64
	Title string
	Icon  *string
}

// Draft holds the fields accepted when a collection is created.
type Draft struct {
	Title string  `json:"title" validate:"required"`
	Icon  *string `json:"icon"`
}

// Normalize trims the title so a blank one counts as missing.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	return d
}

// Collection builds the record to insert. Call after validation.
func (d Draft) Collection() Collection {
	return Collection{
		Title: d.Title,
		Icon:  d.Icon,
	}
}

// Member identifies a book to add to a collection.
type Member struct {
	BookID int64 `json:"bookId" validate:"required,gt=0"`
}
