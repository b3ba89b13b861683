package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/rs/zerolog"
)

// DefaultSearchLimit is how many results a free-text search asks the catalog for.
const DefaultSearchLimit = 20

var (
	ErrNoMetadata    = errors.New("no provider has metadata for this ISBN")
	ErrProvidersDown = errors.New("every queried provider failed")
)

const (
	upstreamMessage   = "failed to fetch book metadata"
	notFoundMessage   = "book not found"
	missingISBN       = "isbn is required"
	missingQuery      = "q is required"
	cacheProviderName = "cache"
)

type UseCase interface {
	LookupISBN(ctx context.Context, isbn string) (Candidate, error)
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Resolver looks up book metadata: primary then, when needed, secondary for ISBNs,
// and a single catalog for free-text search.
type Resolver struct {
	primary     ISBNProvider
	secondary   ISBNProvider
	catalog     Catalog
	cache       Cache
	observer    Observer
	logger      zerolog.Logger
	searchLimit int
}

type Option func(*Resolver)

func WithSecondary(p ISBNProvider) Option {
	return func(r *Resolver) { r.secondary = p }
}

func WithCatalog(c Catalog) Option {
	return func(r *Resolver) { r.catalog = c }
}

func WithCache(c Cache) Option {
	return func(r *Resolver) { r.cache = c }
}

func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observer = o
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

func WithSearchLimit(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.searchLimit = n
		}
	}
}

func NewResolver(primary ISBNProvider, opts ...Option) *Resolver {
	r := &Resolver{
		primary:     primary,
		observer:    nopObserver{},
		logger:      zerolog.Nop(),
		searchLimit: DefaultSearchLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NormalizeISBN drops surrounding space and the separators people type or scan.
func NormalizeISBN(isbn string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(isbn))
}

// LookupISBN resolves an ISBN into a candidate.
//
// The secondary provider is asked only when the primary has nothing or has no cover.
// Provider failures count as "no data"; the lookup fails as upstream only when
// every provider asked has failed.
func (r *Resolver) LookupISBN(ctx context.Context, isbn string) (Candidate, error) {
	isbn = NormalizeISBN(isbn)
	if isbn == "" {
		return Candidate{}, errs.Validation(missingISBN)
	}

	log := r.logger.With().
		Str("lookup_id", uuid.NewString()).
		Str("isbn", isbn).
		Logger()

	if c, ok := r.fromCache(ctx, log, isbn); ok {
		return c, nil
	}

	var (
		queried int
		failed  []error
	)
	ask := func(p ISBNProvider) *Record {
		queried++
		rec, err := r.lookup(ctx, log, p, isbn)
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", p.Name(), err))
		}
		return rec
	}

	var primary, secondary *Record
	if r.primary != nil {
		primary = ask(r.primary)
	}
	if r.secondary != nil && !primary.HasCover() {
		secondary = ask(r.secondary)
	}

	merged := Merge(primary, secondary)
	if merged == nil {
		if queried > 0 && len(failed) == queried {
			log.Error().Errs("errors", failed).Msg("isbn lookup failed on every provider")
			return Candidate{}, errs.Upstream(upstreamMessage, errors.Join(append(failed, ErrProvidersDown)...))
		}
		log.Info().Msg("isbn not found")
		return Candidate{}, errs.NotFoundWrap(ErrNoMetadata, notFoundMessage)
	}

	c := merged.Candidate(isbn)
	log.Info().
		Bool("primary", primary != nil).
		Bool("secondary", secondary != nil).
		Bool("cover", c.Cover != "").
		Msg("isbn resolved")

	r.toCache(ctx, log, isbn, c)
	return c, nil
}

func (r *Resolver) lookup(ctx context.Context, log zerolog.Logger, p ISBNProvider, isbn string) (*Record, error) {
	start := time.Now()
	rec, err := p.LookupISBN(ctx, isbn)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		log.Warn().Err(err).Str("provider", p.Name()).Dur("elapsed", elapsed).Msg("provider lookup failed")
		r.observer.ProviderCall(ctx, p.Name(), OperationISBN, OutcomeError, elapsed)
		return nil, err
	case rec == nil:
		log.Debug().Str("provider", p.Name()).Dur("elapsed", elapsed).Msg("provider has no record")
		r.observer.ProviderCall(ctx, p.Name(), OperationISBN, OutcomeMiss, elapsed)
		return nil, nil
	}
	log.Debug().Str("provider", p.Name()).Dur("elapsed", elapsed).Bool("cover", rec.HasCover()).Msg("provider returned record")
	r.observer.ProviderCall(ctx, p.Name(), OperationISBN, OutcomeHit, elapsed)
	return rec, nil
}

func (r *Resolver) fromCache(ctx context.Context, log zerolog.Logger, isbn string) (Candidate, bool) {
	if r.cache == nil {
		return Candidate{}, false
	}
	start := time.Now()
	c, ok, err := r.cache.Get(ctx, isbn)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn().Err(err).Msg("reading isbn cache")
		r.observer.ProviderCall(ctx, cacheProviderName, OperationCache, OutcomeError, elapsed)
		return Candidate{}, false
	}
	if !ok {
		r.observer.ProviderCall(ctx, cacheProviderName, OperationCache, OutcomeMiss, elapsed)
		return Candidate{}, false
	}
	log.Debug().Msg("isbn served from cache")
	r.observer.ProviderCall(ctx, cacheProviderName, OperationCache, OutcomeHit, elapsed)
	return c, true
}

func (r *Resolver) toCache(ctx context.Context, log zerolog.Logger, isbn string, c Candidate) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, isbn, c); err != nil {
		log.Warn().Err(err).Msg("writing isbn cache")
	}
}

// Search runs a free-text query against the catalog. No results is an empty slice.
func (r *Resolver) Search(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation(missingQuery)
	}
	if r.catalog == nil {
		return nil, errs.Upstream(upstreamMessage, errors.New("no search catalog configured"))
	}

	start := time.Now()
	records, err := r.catalog.Search(ctx, query, r.searchLimit)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Error().Err(err).Str("provider", r.catalog.Name()).Str("query", query).Msg("search failed")
		r.observer.ProviderCall(ctx, r.catalog.Name(), OperationSearch, OutcomeError, elapsed)
		return nil, errs.Upstream(upstreamMessage, err)
	}

	outcome := OutcomeHit
	if len(records) == 0 {
		outcome = OutcomeMiss
	}
	r.observer.ProviderCall(ctx, r.catalog.Name(), OperationSearch, outcome, elapsed)

	candidates := make([]Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, rec.Candidate(""))
	}
	return candidates, nil
}
