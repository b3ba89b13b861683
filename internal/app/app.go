// Package app wires configuration into the services shared by the API and the CLI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/marcelsud/bookshelf/book"
	bookpostgres "github.com/marcelsud/bookshelf/book/postgres"
	booksqlite "github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/collection"
	collectionpostgres "github.com/marcelsud/bookshelf/collection/postgres"
	collectionsqlite "github.com/marcelsud/bookshelf/collection/sqlite"
	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/marcelsud/bookshelf/enrichment/redis"
	"github.com/marcelsud/bookshelf/internal/database"
	"github.com/marcelsud/bookshelf/metrics"
	"github.com/marcelsud/bookshelf/providers"
	"github.com/rs/zerolog"
)

/*
 * Imports only go one way: down. cmd/ builds an App, the App builds business
 * services, and services depend on the storage layer through interfaces.
 */

type App struct {
	DB          *sql.DB
	Books       *book.Service
	Collections *collection.Service
	Resolver    *enrichment.Resolver
	Stats       *metrics.SQLCollector
	// Exporter is nil when metrics are disabled.
	Exporter *metrics.OTelExporter

	cache *redis.Cache
}

// New opens the store and builds every service. The caller owns Close.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	a := &App{DB: db}
	books, collections := repositories(cfg.DBDriver, db)
	a.Books = book.NewService(books)
	a.Collections = collection.NewService(collections, books)
	a.Stats = metrics.NewSQLCollector(db)

	var opts []enrichment.Option
	if cfg.MetricsEnabled {
		a.Exporter, err = metrics.NewOTelExporter(a.Stats)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		opts = append(opts, enrichment.WithObserver(a.Exporter))
	}

	if cfg.RedisAddr != "" {
		a.cache, err = redis.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL())
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("isbn cache disabled")
		} else {
			opts = append(opts, enrichment.WithCache(a.cache))
		}
	}

	loader, err := providerLoader(cfg.ProvidersFile)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Resolver, err = providers.NewResolver(loader, logger, opts...)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("building resolver: %w", err)
	}

	return a, nil
}

func repositories(driver string, db *sql.DB) (book.Repository, collection.Repository) {
	if driver == database.DriverPostgres {
		return bookpostgres.NewRepository(db), collectionpostgres.NewRepository(db)
	}
	return booksqlite.NewRepository(db), collectionsqlite.NewRepository(db)
}

func providerLoader(path string) (*providers.Loader, error) {
	if path == "" {
		return providers.Defaults(), nil
	}
	loader := providers.NewLoader()
	if err := loader.Load(path); err != nil {
		return nil, err
	}
	return loader, nil
}

// Close releases the exporter, the cache and the database.
func (a *App) Close(ctx context.Context) error {
	var errList []error
	if a.Exporter != nil {
		errList = append(errList, a.Exporter.Shutdown(ctx))
	}
	if a.cache != nil {
		errList = append(errList, a.cache.Close())
	}
	if a.DB != nil {
		errList = append(errList, a.DB.Close())
	}
	return errors.Join(errList...)
}
