package enrichment

import "strings"

// Cover holds the image URLs a provider offers, by size. Any may be empty.
type Cover struct {
	Small  string
	Medium string
	Large  string
}

// Largest returns the biggest available image URL, or "".
func (c Cover) Largest() string {
	for _, u := range []string{c.Large, c.Medium, c.Small} {
		if u != "" {
			return u
		}
	}
	return ""
}

// IsEmpty reports whether no size is available.
func (c Cover) IsEmpty() bool {
	return c.Largest() == ""
}

// Record is the provider-neutral intermediate form of a metadata result.
type Record struct {
	Title       string
	Authors     []string
	Cover       Cover
	Description string
	ISBN        string
}

// HasCover reports whether the record carries at least one cover size.
func (r *Record) HasCover() bool {
	return r != nil && !r.Cover.IsEmpty()
}

// Candidate is a pre-filled book proposal returned to the caller. It is never persisted as is.
type Candidate struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Cover       string `json:"cover,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Description string `json:"description,omitempty"`
}

// Candidate flattens the record. fallbackISBN is used when the record has no ISBN of its own.
func (r Record) Candidate(fallbackISBN string) Candidate {
	isbn := r.ISBN
	if isbn == "" {
		isbn = fallbackISBN
	}
	return Candidate{
		Title:       r.Title,
		Author:      strings.Join(r.Authors, ", "),
		Cover:       r.Cover.Largest(),
		ISBN:        isbn,
		Description: r.Description,
	}
}

// Merge combines a primary and a secondary result for the same ISBN.
//
// With no primary the secondary is used as is. A primary without a cover takes only
// the secondary's cover. Otherwise the primary wins untouched. Neither input is modified.
func Merge(primary, secondary *Record) *Record {
	if primary == nil {
		if secondary == nil {
			return nil
		}
		out := *secondary
		return &out
	}
	out := *primary
	if !primary.HasCover() && secondary.HasCover() {
		out.Cover = secondary.Cover
	}
	return &out
}
