package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/marcelsud/bookshelf/metrics"
)

// getISBN resolves an ISBN from the path, as scanned or typed.
func getISBN(resolver enrichment.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := resolver.LookupISBN(r.Context(), chi.URLParam(r, "isbn"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, c)
	})
}

func getOnlineSearch(resolver enrichment.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		candidates, err := resolver.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if candidates == nil {
			candidates = []enrichment.Candidate{}
		}
		writeData(w, candidates)
	})
}

func getStats(collector metrics.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m, err := collector.Collect(r.Context())
		if err != nil {
			writeError(w, r, errs.Store(err))
			return
		}
		writeData(w, m)
	})
}
