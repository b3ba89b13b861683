// Package main provides the bookshelf CLI, a terminal front end over the same
// services the HTTP API uses.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marcelsud/bookshelf/config"
	"github.com/marcelsud/bookshelf/internal/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli holds what every command needs once the root has attached to the store.
type cli struct {
	app     *app.App
	out     io.Writer
	errOut  io.Writer
	json    bool
	verbose bool
}

// execute runs one command line. The library is closed even when the command fails.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	c := &cli{out: out, errOut: errOut}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	defer c.detach()
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookshelf",
		Short: "Bookshelf manages a personal book library",
		Long: `Bookshelf catalogs books, groups them into collections and looks up
metadata by ISBN or free text. It reads the same configuration as the API
(.env in the working directory, overridden by environment variables).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.attach,
	}
	root.PersistentFlags().BoolVar(&c.json, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log provider calls to stderr")

	root.AddCommand(c.booksCmd())
	root.AddCommand(c.collectionsCmd())
	root.AddCommand(c.isbnCmd())
	root.AddCommand(c.searchCmd())
	return root
}

// attach loads config and opens the library. Metrics are off: nothing scrapes a CLI.
func (c *cli) attach(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.MetricsEnabled = false

	level := zerolog.WarnLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: c.errOut}).Level(level).With().Timestamp().Logger()

	c.app, err = app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	return nil
}

func (c *cli) detach() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close(context.Background())
	c.app = nil
	return err
}
