package chi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetISBN(t *testing.T) {
	s := newTestServer(t, Options{})
	s.metadata.On("LookupISBN", mock.Anything, "9780441013593").Return(enrichment.Candidate{
		Title:  "Dune",
		Author: "Frank Herbert",
		Cover:  "https://covers.openlibrary.org/b/id/1-M.jpg",
		ISBN:   "9780441013593",
	}, nil)
	s.metadata.On("LookupISBN", mock.Anything, "0000000000").
		Return(enrichment.Candidate{}, errs.NotFoundWrap(enrichment.ErrNoMetadata, "book not found"))
	s.metadata.On("LookupISBN", mock.Anything, "1111111111").
		Return(enrichment.Candidate{}, errs.Upstream("failed to fetch book metadata", errors.New("dial tcp: timeout")))

	code, resp := s.do(t, http.MethodGet, "/api/isbn/9780441013593", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"title": "Dune",
		"author": "Frank Herbert",
		"cover": "https://covers.openlibrary.org/b/id/1-M.jpg",
		"isbn": "9780441013593"
	}`, string(resp.Data))

	code, resp = s.do(t, http.MethodGet, "/api/isbn/0000000000", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "book not found", resp.Error)

	code, resp = s.do(t, http.MethodGet, "/api/isbn/1111111111", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "failed to fetch book metadata", resp.Error)
}

func TestGetOnlineSearch(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.metadata.On("Search", mock.Anything, "neuromancer").Return([]enrichment.Candidate{
			{Title: "Neuromancer", Author: "William Gibson"},
		}, nil)

		code, resp := s.do(t, http.MethodGet, "/api/search/online?q=neuromancer", "")
		require.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `[{"title":"Neuromancer","author":"William Gibson"}]`, string(resp.Data))
	})

	t.Run("no results is an empty list", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.metadata.On("Search", mock.Anything, "zzzz").Return(nil, nil)

		code, resp := s.do(t, http.MethodGet, "/api/search/online?q=zzzz", "")
		require.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `[]`, string(resp.Data))
	})

	t.Run("missing query", func(t *testing.T) {
		s := newTestServer(t, Options{})
		s.metadata.On("Search", mock.Anything, "").Return(nil, errs.Validation("q is required"))

		code, resp := s.do(t, http.MethodGet, "/api/search/online", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "q is required", resp.Error)
	})
}
