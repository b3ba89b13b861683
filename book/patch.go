package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/marcelsud/bookshelf/internal/errs"
)

var (
	ErrNoFields     = errors.New("no fields to update")
	ErrUnknownField = errors.New("field cannot be updated")
	ErrInvalidValue = errors.New("invalid field value")
)

const (
	MinRating = 0
	MaxRating = 5
)

/* Field is a column that a patch is allowed to touch.
 * The set is closed: title, author and id are not patchable.
 */
type Field int

const (
	FieldCover Field = iota + 1
	FieldISBN
	FieldDescription
	FieldRating
	FieldReview
	FieldStatus
)

// String returns the field's JSON name.
func (f Field) String() string {
	switch f {
	case FieldCover:
		return "cover"
	case FieldISBN:
		return "isbn"
	case FieldDescription:
		return "description"
	case FieldRating:
		return "rating"
	case FieldReview:
		return "review"
	case FieldStatus:
		return "status"
	}
	return "unknown"
}

// ParseField maps a JSON name onto a patchable field.
func ParseField(name string) (Field, error) {
	switch name {
	case "cover":
		return FieldCover, nil
	case "isbn":
		return FieldISBN, nil
	case "description":
		return FieldDescription, nil
	case "rating":
		return FieldRating, nil
	case "review":
		return FieldReview, nil
	case "status":
		return FieldStatus, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Change is one field assignment. Value is nil (clear), string, int or Status.
type Change struct {
	Field Field
	Value any
}

// Patch is a validated set of field assignments, at most one per field.
type Patch struct {
	changes []Change
}

// NewPatch validates a raw JSON object against the allow-list and decodes each value.
// Every failure is a validation error.
func NewPatch(raw map[string]json.RawMessage) (Patch, error) {
	if len(raw) == 0 {
		return Patch{}, errs.ValidationWrap(ErrNoFields, ErrNoFields.Error())
	}

	var p Patch
	for name, value := range raw {
		field, err := ParseField(name)
		if err != nil {
			return Patch{}, errs.ValidationWrap(err, err.Error())
		}
		v, err := decodeValue(field, value)
		if err != nil {
			return Patch{}, errs.ValidationWrap(err, err.Error())
		}
		p.changes = append(p.changes, Change{Field: field, Value: v})
	}
	sort.Slice(p.changes, func(i, j int) bool { return p.changes[i].Field < p.changes[j].Field })
	return p, nil
}

func decodeValue(field Field, raw json.RawMessage) (any, error) {
	isNull := len(raw) == 0 || string(raw) == "null"

	switch field {
	case FieldRating:
		if isNull {
			return nil, nil
		}
		var n int
		if err := json.Unmarshal(raw, &n); err != nil || n < MinRating || n > MaxRating {
			return nil, fmt.Errorf("%w: rating must be an integer between %d and %d", ErrInvalidValue, MinRating, MaxRating)
		}
		return n, nil
	case FieldStatus:
		var s string
		if isNull || json.Unmarshal(raw, &s) != nil {
			return nil, fmt.Errorf("%w: status must be one of: unread reading read", ErrInvalidValue)
		}
		status, err := ParseStatus(s)
		if err != nil {
			return nil, fmt.Errorf("%w: status must be one of: unread reading read", ErrInvalidValue)
		}
		return status, nil
	default:
		if isNull {
			return nil, nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s must be a string or null", ErrInvalidValue, field)
		}
		return s, nil
	}
}

// Changes returns the assignments ordered by field.
func (p Patch) Changes() []Change {
	return p.changes
}

// IsEmpty reports whether the patch has no assignments.
func (p Patch) IsEmpty() bool {
	return len(p.changes) == 0
}

// Applied echoes the assignments keyed by JSON field name.
func (p Patch) Applied() map[string]any {
	applied := make(map[string]any, len(p.changes))
	for _, c := range p.changes {
		if s, ok := c.Value.(Status); ok {
			applied[c.Field.String()] = s.String()
			continue
		}
		applied[c.Field.String()] = c.Value
	}
	return applied
}

// Apply returns b with the patch applied, as the store would after the update.
func (p Patch) Apply(b Book) Book {
	for _, c := range p.changes {
		switch c.Field {
		case FieldCover:
			b.Cover = stringPtr(c.Value)
		case FieldISBN:
			b.ISBN = stringPtr(c.Value)
		case FieldDescription:
			b.Description = stringPtr(c.Value)
		case FieldReview:
			b.Review = stringPtr(c.Value)
		case FieldRating:
			if n, ok := c.Value.(int); ok {
				b.Rating = &n
			} else {
				b.Rating = nil
			}
		case FieldStatus:
			b.Status = c.Value.(Status)
		}
	}
	return b
}

// StoreValue converts a change value into a database/sql argument.
func (c Change) StoreValue() any {
	switch v := c.Value.(type) {
	case Status:
		return v.String()
	default:
		return v
	}
}

func stringPtr(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
