package book

import (
	"bytes"
	"fmt"
)

/* Status represents where the reader is with a book.
 * Stored as its string form, so the database stays readable.
 */
type Status int

const (
	Unread Status = iota + 1
	Reading
	Read
)

func (s Status) String() string {
	switch s {
	case Unread:
		return "unread"
	case Reading:
		return "reading"
	case Read:
		return "read"
	}
	return "unknown"
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// NewStatus creates a Status from its string form, defaulting to Unread.
func NewStatus(s string) Status {
	switch s {
	case "reading":
		return Reading
	case "read":
		return Read
	}
	return Unread
}

// ParseStatus is the strict version of NewStatus.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "unread", "reading", "read":
		return NewStatus(s), nil
	}
	return 0, fmt.Errorf("invalid status: %q", s)
}

// Validate checks if the status is one of the known values.
func (s Status) Validate() error {
	if s < Unread || s > Read {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}
