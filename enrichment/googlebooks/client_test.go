package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcelsud/bookshelf/enrichment/internal/fetch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func newTestClient(t *testing.T, opts Options, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	opts.BaseURL = server.URL
	return New(opts, zerolog.Nop())
}

func TestClient_Search(t *testing.T) {
	fixture := loadFixture(t, "search.json")

	tests := []struct {
		name      string
		response  []byte
		status    int
		wantCount int
		wantErr   error
	}{
		{name: "successful search", response: fixture, status: http.StatusOK, wantCount: 2},
		{name: "empty results", response: []byte(`{"kind": "books#volumes", "totalItems": 0}`), status: http.StatusOK},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: fetch.ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, wantErr: fetch.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, Options{}, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/volumes", r.URL.Path)
				assert.Equal(t, "dune", r.URL.Query().Get("q"))
				assert.Equal(t, "20", r.URL.Query().Get("maxResults"))
				w.WriteHeader(tt.status)
				if tt.response != nil {
					_, _ = w.Write(tt.response)
				}
			})

			records, err := c.Search(context.Background(), "dune", 20)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Len(t, records, tt.wantCount)
		})
	}
}

func TestClient_SearchMapping(t *testing.T) {
	fixture := loadFixture(t, "search.json")
	c := newTestClient(t, Options{APIKey: "secret"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = w.Write(fixture)
	})

	records, err := c.Search(context.Background(), "dune", 20)
	require.NoError(t, err)
	require.Len(t, records, 2)

	dune := records[0]
	assert.Equal(t, "Dune", dune.Title)
	assert.Equal(t, "9780441013593", dune.ISBN)
	assert.Equal(t, "http://books.google.com/books/content?id=B1hSG45JCX4C&zoom=1", dune.Cover.Largest())
	assert.Equal(t, "Set on the desert planet Arrakis.\nA classic.", dune.Description)

	messiah := records[1].Candidate("")
	assert.Equal(t, "Frank Herbert, Brian Herbert", messiah.Author)
	assert.Empty(t, messiah.ISBN)
	assert.Empty(t, messiah.Cover)
}

func TestClient_SearchCapsMaxResults(t *testing.T) {
	c := newTestClient(t, Options{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("maxResults"))
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.Search(context.Background(), "dune", 100)
	require.NoError(t, err)
}

func TestClient_LookupISBN(t *testing.T) {
	fixture := loadFixture(t, "search.json")

	t.Run("first volume wins", func(t *testing.T) {
		c := newTestClient(t, Options{}, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "isbn:9780441013593", r.URL.Query().Get("q"))
			assert.Empty(t, r.URL.Query().Get("maxResults"))
			_, _ = w.Write(fixture)
		})

		rec, err := c.LookupISBN(context.Background(), "9780441013593")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "Dune", rec.Title)
		assert.True(t, rec.HasCover())
	})

	t.Run("no volumes is nil without error", func(t *testing.T) {
		c := newTestClient(t, Options{}, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"totalItems": 0}`))
		})

		rec, err := c.LookupISBN(context.Background(), "0000000000")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "no markup", PlainText("  no markup "))
	assert.Equal(t, "line one\nline two", PlainText("line one<br>line two"))
	assert.Equal(t, "Tom & Jerry", PlainText("<i>Tom &amp; Jerry</i>"))
	assert.Equal(t, "", PlainText(""))
}
