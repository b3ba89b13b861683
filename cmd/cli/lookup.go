package main

import (
	"strings"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/spf13/cobra"
)

func (c *cli) isbnCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Look up book metadata by ISBN",
		Long: `ISBN asks the primary provider first and the secondary only when the
primary has no entry or no cover. With --save the result is added to the library.

Example:
  bookshelf isbn 978-0-441-01359-3
  bookshelf isbn 9780441013593 --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cand, err := c.app.Resolver.LookupISBN(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !save {
				return c.printCandidates([]enrichment.Candidate{cand})
			}
			b, err := c.app.Books.Create(cmd.Context(), draftFrom(cand))
			if err != nil {
				return err
			}
			return c.printBook(b)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "add the book to the library")
	return cmd
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Search the online catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := c.app.Resolver.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.printCandidates(candidates)
		},
	}
}

func draftFrom(cand enrichment.Candidate) book.Draft {
	d := book.Draft{Title: cand.Title, Author: cand.Author}
	if cand.Cover != "" {
		d.Cover = &cand.Cover
	}
	if cand.ISBN != "" {
		d.ISBN = &cand.ISBN
	}
	if cand.Description != "" {
		d.Description = &cand.Description
	}
	return d
}
