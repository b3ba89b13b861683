package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ enrichment.Observer = (*metrics.OTelExporter)(nil)

type staticCollector struct {
	m metrics.Metrics
}

func (s staticCollector) Collect(context.Context) (metrics.Metrics, error) { return s.m, nil }

func (s staticCollector) GetStatusCounts(context.Context) (map[string]int64, error) {
	return s.m.BooksByStatus, nil
}

func (s staticCollector) GetRatedCount(context.Context) (int64, error) { return s.m.RatedBooks, nil }

func (s staticCollector) GetCollectionCount(context.Context) (int64, error) {
	return s.m.Collections, nil
}

func (s staticCollector) GetMembershipCount(context.Context) (int64, error) {
	return s.m.Memberships, nil
}

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOTelExporter(t *testing.T) {
	ctx := context.Background()
	exporter, err := metrics.NewOTelExporter(staticCollector{m: metrics.Metrics{
		BooksByStatus: map[string]int64{"unread": 4, "reading": 1, "read": 7},
		RatedBooks:    3,
		Collections:   2,
		Memberships:   5,
	}})
	require.NoError(t, err)
	defer exporter.Shutdown(ctx)

	exporter.ProviderCall(ctx, "openlibrary", enrichment.OperationISBN, enrichment.OutcomeHit, 120*time.Millisecond)
	exporter.ProviderCall(ctx, "googlebooks", enrichment.OperationSearch, enrichment.OutcomeError, time.Second)

	body := scrape(t, exporter.ServeHTTP())

	assert.Contains(t, body, "bookshelf_books")
	assert.Contains(t, body, `book_status="read"`)
	assert.Contains(t, body, "bookshelf_collections")
	assert.Contains(t, body, "bookshelf_memberships")
	assert.Contains(t, body, "bookshelf_provider_calls_total")
	assert.Contains(t, body, `provider="openlibrary"`)
	assert.Contains(t, body, `outcome="error"`)
	assert.Contains(t, body, "bookshelf_provider_duration")
}

func TestOTelExporter_SeparateRegistries(t *testing.T) {
	ctx := context.Background()
	first, err := metrics.NewOTelExporter(staticCollector{})
	require.NoError(t, err)
	defer first.Shutdown(ctx)

	second, err := metrics.NewOTelExporter(staticCollector{})
	require.NoError(t, err)
	defer second.Shutdown(ctx)

	second.ProviderCall(ctx, "cache", enrichment.OperationCache, enrichment.OutcomeMiss, time.Millisecond)

	assert.NotContains(t, scrape(t, first.ServeHTTP()), `provider="cache"`)
	assert.Contains(t, scrape(t, second.ServeHTTP()), `provider="cache"`)
}
