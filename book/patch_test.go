package book_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(m map[string]string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = json.RawMessage(v)
	}
	return out
}

func TestNewPatch(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := book.NewPatch(nil)
		assert.True(t, errors.Is(err, book.ErrNoFields))
		assert.True(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("rejects fields outside the allow-list", func(t *testing.T) {
		for _, name := range []string{"title", "author", "id", "rating = 5; DROP TABLE books; --"} {
			_, err := book.NewPatch(raw(map[string]string{name: `"x"`}))
			assert.True(t, errors.Is(err, book.ErrUnknownField), name)
			assert.True(t, errors.Is(err, errs.ErrValidation), name)
		}
	})

	t.Run("decodes every patchable field", func(t *testing.T) {
		p, err := book.NewPatch(raw(map[string]string{
			"status":      `"read"`,
			"review":      `"loved it"`,
			"rating":      `5`,
			"cover":       `null`,
			"isbn":        `"0441569595"`,
			"description": `"cyberpunk"`,
		}))
		require.NoError(t, err)
		changes := p.Changes()
		require.Len(t, changes, 6)
		assert.Equal(t, book.FieldCover, changes[0].Field)
		assert.Nil(t, changes[0].Value)
		assert.Equal(t, book.FieldStatus, changes[5].Field)
		assert.Equal(t, book.Read, changes[5].Value)
		assert.Equal(t, "read", changes[5].StoreValue())
		assert.Equal(t, map[string]any{
			"cover":       nil,
			"isbn":        "0441569595",
			"description": "cyberpunk",
			"rating":      5,
			"review":      "loved it",
			"status":      "read",
		}, p.Applied())
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, v := range []string{`-1`, `6`, `4.5`, `"4"`, `true`} {
			_, err := book.NewPatch(raw(map[string]string{"rating": v}))
			assert.True(t, errors.Is(err, book.ErrInvalidValue), v)
		}
		p, err := book.NewPatch(raw(map[string]string{"rating": `0`}))
		require.NoError(t, err)
		assert.Equal(t, 0, p.Changes()[0].Value)
	})

	t.Run("status must be known and not null", func(t *testing.T) {
		for _, v := range []string{`"lost"`, `null`, `1`} {
			_, err := book.NewPatch(raw(map[string]string{"status": v}))
			assert.True(t, errors.Is(err, book.ErrInvalidValue), v)
		}
	})

	t.Run("text fields accept only strings", func(t *testing.T) {
		_, err := book.NewPatch(raw(map[string]string{"review": `42`}))
		assert.True(t, errors.Is(err, book.ErrInvalidValue))
	})
}

func TestPatch_Apply(t *testing.T) {
	review := "x"
	b := book.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Review: &review, Status: book.Unread}

	p, err := book.NewPatch(raw(map[string]string{"rating": `4`, "status": `"reading"`}))
	require.NoError(t, err)

	got := p.Apply(b)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
	assert.Equal(t, book.Reading, got.Status)
	require.NotNil(t, got.Review)
	assert.Equal(t, "x", *got.Review)
	assert.Equal(t, "Dune", got.Title)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "unread", book.Unread.String())
	assert.Equal(t, book.Reading, book.NewStatus("reading"))
	assert.Equal(t, book.Unread, book.NewStatus("whatever"))

	_, err := book.ParseStatus("whatever")
	assert.Error(t, err)

	data, err := json.Marshal(book.Read)
	require.NoError(t, err)
	assert.Equal(t, `"read"`, string(data))

	assert.NoError(t, book.Read.Validate())
	assert.Error(t, book.Status(0).Validate())
}
