package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestGetBooks(t *testing.T) {
	s := newTestServer(t, Options{})
	books := []book.Book{
		{ID: 2, Title: "Title 2", Author: "Author 2", Rating: ptr(4), Status: book.Read},
		{ID: 1, Title: "Title 1", Author: "Author 1", Status: book.Unread},
	}
	s.books.On("List", mock.Anything, book.Filter{}).Return(books, nil)

	code, resp := s.do(t, http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, code)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &results))
	require.Len(t, results, 2)
	assert.Equal(t, float64(2), results[0]["id"])
	assert.Equal(t, "read", results[0]["status"])
	assert.Equal(t, float64(4), results[0]["rating"])
	assert.Contains(t, results[1], "cover")
	assert.Nil(t, results[1]["cover"])
	assert.Nil(t, results[1]["rating"])
}

func TestGetBooks_Empty(t *testing.T) {
	s := newTestServer(t, Options{})
	s.books.On("List", mock.Anything, book.Filter{}).Return([]book.Book{}, nil)

	code, resp := s.do(t, http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestGetBooks_ByCollection(t *testing.T) {
	s := newTestServer(t, Options{})
	s.books.On("List", mock.Anything, mock.MatchedBy(func(f book.Filter) bool {
		return f.CollectionID != nil && *f.CollectionID == 3
	})).Return([]book.Book{{ID: 1, Title: "Dune", Author: "Frank Herbert", Status: book.Unread}}, nil)

	code, _ := s.do(t, http.MethodGet, "/api/books?collectionId=3", "")
	assert.Equal(t, http.StatusOK, code)

	code, resp := s.do(t, http.MethodGet, "/api/books?collectionId=shelf", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "collectionId must be an integer", resp.Error)
}

func TestGetBook(t *testing.T) {
	s := newTestServer(t, Options{})
	s.books.On("Get", mock.Anything, int64(1)).
		Return(book.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", ISBN: ptr("9780441013593"), Status: book.Reading}, nil)
	s.books.On("Get", mock.Anything, int64(9)).Return(book.Book{}, errs.NotFound("book %d not found", 9))

	code, resp := s.do(t, http.MethodGet, "/api/books/1", "")
	require.Equal(t, http.StatusOK, code)
	var got bookResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "reading", got.Status)
	require.NotNil(t, got.ISBN)
	assert.Equal(t, "9780441013593", *got.ISBN)

	code, resp = s.do(t, http.MethodGet, "/api/books/9", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "book 9 not found", resp.Error)

	code, resp = s.do(t, http.MethodGet, "/api/books/dune", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "id must be an integer", resp.Error)
}

func TestPostBooks(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Create", mock.Anything, book.Draft{Title: "Dune", Author: "Frank Herbert", ISBN: ptr("9780441013593")}).
			Return(book.Book{ID: 5, Title: "Dune", Author: "Frank Herbert", ISBN: ptr("9780441013593"), Status: book.Unread}, nil)

		code, resp := s.do(t, http.MethodPost, "/api/books", `{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593"}`)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "success", resp.Message)

		var got bookResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "unread", got.Status)
	})

	t.Run("validation error", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Create", mock.Anything, mock.AnythingOfType("book.Draft")).
			Return(book.Book{}, errs.Validation("author is required"))

		code, resp := s.do(t, http.MethodPost, "/api/books", `{"title":"Dune"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "author is required", resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, Options{})

		code, resp := s.do(t, http.MethodPost, "/api/books", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid JSON body", resp.Error)

		code, resp = s.do(t, http.MethodPost, "/api/books", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "request body is required", resp.Error)
	})

	t.Run("store error surfaces its message", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Create", mock.Anything, mock.AnythingOfType("book.Draft")).
			Return(book.Book{}, errs.Store(errors.New("database is locked")))

		code, resp := s.do(t, http.MethodPost, "/api/books", `{"title":"Dune","author":"Frank Herbert"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "database is locked", resp.Error)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Create", mock.Anything, mock.AnythingOfType("book.Draft")).
			Return(book.Book{}, errors.New("nil pointer somewhere"))

		code, resp := s.do(t, http.MethodPost, "/api/books", `{"title":"Dune","author":"Frank Herbert"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, internalMessage, resp.Error)
	})
}

func TestPatchBook(t *testing.T) {
	t.Run("applies the given fields", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Patch", mock.Anything, int64(7), mock.MatchedBy(func(p book.Patch) bool {
			return len(p.Changes()) == 2
		})).Return(book.PatchResult{
			ID:      7,
			Changes: 1,
			Applied: map[string]any{"rating": 4, "review": "great"},
		}, nil)

		code, resp := s.do(t, http.MethodPatch, "/api/books/7", `{"rating":4,"review":"great"}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "updated", resp.Message)
		require.NotNil(t, resp.Changes)
		assert.Equal(t, int64(1), *resp.Changes)
		assert.JSONEq(t, `{"id":7,"rating":4,"review":"great"}`, string(resp.Data))
	})

	t.Run("unknown id reports zero changes", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.books.On("Patch", mock.Anything, int64(999), mock.AnythingOfType("book.Patch")).
			Return(book.PatchResult{ID: 999, Changes: 0, Applied: map[string]any{"status": "read"}}, nil)

		code, resp := s.do(t, http.MethodPatch, "/api/books/999", `{"status":"read"}`)
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, resp.Changes)
		assert.Equal(t, int64(0), *resp.Changes)
	})

	t.Run("rejected before reaching the service", func(t *testing.T) {
		s := newTestServer(t, Options{})
		cases := map[string]string{
			``:                      "no fields to update",
			`{}`:                    "no fields to update",
			`{"title":"New title"}`: `field cannot be updated: "title"`,
			`{"rating":9}`:          "invalid field value: rating must be an integer between 0 and 5",
			`[1,2]`:                 "request body must be a JSON object",
		}
		for body, message := range cases {
			code, resp := s.do(t, http.MethodPatch, "/api/books/7", body)
			assert.Equal(t, http.StatusBadRequest, code, body)
			assert.Equal(t, message, resp.Error, body)
		}
	})
}

func TestDeleteBook(t *testing.T) {
	s := newTestServer(t, Options{})
	s.books.On("Delete", mock.Anything, int64(3)).Return(int64(1), nil)
	s.books.On("Delete", mock.Anything, int64(4)).Return(int64(0), nil)

	code, resp := s.do(t, http.MethodDelete, "/api/books/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "deleted", resp.Message)
	require.NotNil(t, resp.Changes)
	assert.Equal(t, int64(1), *resp.Changes)

	code, resp = s.do(t, http.MethodDelete, "/api/books/4", "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Changes)
	assert.Equal(t, int64(0), *resp.Changes)
}

func TestGetBookCollections(t *testing.T) {
	s := newTestServer(t, Options{})
	s.collections.On("ListForBook", mock.Anything, int64(2)).Return([]collection.Collection{
		{ID: 1, Title: "Classics", Icon: ptr("📚")},
		{ID: 4, Title: "Sci-Fi"},
	}, nil)

	code, resp := s.do(t, http.MethodGet, "/api/books/2/collections", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id":1,"title":"Classics","icon":"📚"},{"id":4,"title":"Sci-Fi","icon":null}]`, string(resp.Data))
}
