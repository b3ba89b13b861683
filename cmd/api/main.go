package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/app"
	"github.com/marcelsud/bookshelf/internal/http/chi"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main is where the application is tied together: configuration is read,
 * dependencies are built and the HTTP server is started.
 * It is also the way out: errors end up here and are logged once.
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}

	logger := chi.NewLogger()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("starting application")
		return
	}
	defer a.Close(context.Background())

	opts := chi.Options{AllowedOrigins: cfg.AllowedOrigins()}
	if a.Exporter != nil {
		opts.Metrics = a.Exporter.ServeHTTP()
	}
	r := chi.Handlers(ctx, logger, chi.Services{
		Books:       a.Books,
		Collections: a.Collections,
		Metadata:    a.Resolver,
		Stats:       a.Stats,
	}, opts)

	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)

	logger.Info().
		Str("port", cfg.Port).
		Str("driver", cfg.DBDriver).
		Bool("metrics", a.Exporter != nil).
		Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server failed")
		return
	}
	err = <-errShutdown
	if err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
		return
	}
	logger.Info().Msg("server stopped")
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing the server to close after %s", TIMEOUT)
	default:
		errShutdown <- fmt.Errorf("forcing the server to close: %w", err)
	}
}
