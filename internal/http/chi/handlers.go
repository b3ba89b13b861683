package chi

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/metrics"
	"github.com/rs/zerolog"
)

const requestTimeout = 30 * time.Second

// Services are the use cases the API exposes.
type Services struct {
	Books       book.UseCase
	Collections collection.UseCase
	Metadata    enrichment.UseCase
	Stats       metrics.Collector
}

// Options tune the router. A nil Metrics handler disables /metrics.
type Options struct {
	AllowedOrigins []string
	Metrics        http.Handler
}

// NewLogger builds the JSON request logger shared by the API and its services.
func NewLogger() zerolog.Logger {
	return httplog.NewLogger("bookshelf", httplog.Options{
		JSON: true,
	})
}

func Handlers(ctx context.Context, logger zerolog.Logger, s Services, opts Options) *chi.Mux {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/books", getBooks(s.Books))
		r.Method(http.MethodPost, "/books", postBooks(s.Books))
		r.Method(http.MethodGet, "/books/{id}", getBook(s.Books))
		r.Method(http.MethodPatch, "/books/{id}", patchBook(s.Books))
		r.Method(http.MethodDelete, "/books/{id}", deleteBook(s.Books))
		r.Method(http.MethodGet, "/books/{id}/collections", getBookCollections(s.Collections))

		r.Method(http.MethodGet, "/collections", getCollections(s.Collections))
		r.Method(http.MethodPost, "/collections", postCollections(s.Collections))
		r.Method(http.MethodDelete, "/collections/{id}", deleteCollection(s.Collections))
		r.Method(http.MethodGet, "/collections/{id}/books", getCollectionBooks(s.Collections))
		r.Method(http.MethodPost, "/collections/{id}/books", postCollectionBook(s.Collections))
		r.Method(http.MethodDelete, "/collections/{id}/books/{bookId}", deleteCollectionBook(s.Collections))

		r.Method(http.MethodGet, "/isbn/{isbn}", getISBN(s.Metadata))
		r.Method(http.MethodGet, "/search/online", getOnlineSearch(s.Metadata))

		if s.Stats != nil {
			r.Method(http.MethodGet, "/stats", getStats(s.Stats))
		}
	})

	return r
}

// recoverer turns a panic into a 500 JSON response, like middleware.Recoverer but in the API envelope.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			oplog := httplog.LogEntry(r.Context())
			oplog.Error().Interface("panic", rvr).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			writeJSON(w, http.StatusInternalServerError, envelope{Error: internalMessage})
		}()
		next.ServeHTTP(w, r)
	})
}
