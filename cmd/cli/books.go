package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/marcelsud/bookshelf/book"
	"github.com/spf13/cobra"
)

func (c *cli) booksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage books",
	}
	cmd.AddCommand(c.booksListCmd())
	cmd.AddCommand(c.booksAddCmd())
	cmd.AddCommand(c.booksGetCmd())
	cmd.AddCommand(c.booksSetCmd())
	cmd.AddCommand(c.booksDeleteCmd())
	cmd.AddCommand(c.booksCollectionsCmd())
	return cmd
}

func (c *cli) booksListCmd() *cobra.Command {
	var collectionID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter book.Filter
			if cmd.Flags().Changed("collection") {
				filter.CollectionID = &collectionID
			}
			all, err := c.app.Books.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return c.printBooks(all)
		},
	}
	cmd.Flags().Int64Var(&collectionID, "collection", 0, "only books in this collection")
	return cmd
}

func (c *cli) booksAddCmd() *cobra.Command {
	var (
		draft       book.Draft
		cover       string
		isbn        string
		description string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add catalogs a new book. Title and author are required; the status
defaults to unread.

Example:
  bookshelf books add --title "Dune" --author "Frank Herbert" --isbn 9780441013593
  bookshelf books add --title "Emma" --author "Jane Austen" --status reading`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Cover = flagValue(cmd, "cover", cover)
			draft.ISBN = flagValue(cmd, "isbn", isbn)
			draft.Description = flagValue(cmd, "description", description)
			b, err := c.app.Books.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return c.printBook(b)
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&draft.Author, "author", "", "book author (required)")
	cmd.Flags().StringVar(&draft.Status, "status", "", "unread, reading or read (default: unread)")
	cmd.Flags().StringVar(&cover, "cover", "", "cover image URL")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&description, "description", "", "description")
	return cmd
}

func (c *cli) booksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := c.app.Books.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printBook(b)
		},
	}
}

func (c *cli) booksSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field=value>...",
		Short: "Update some fields of a book",
		Long: `Set changes only the named fields. Patchable fields are cover, isbn,
description, rating, review and status. A value of null clears the field.

Example:
  bookshelf books set 3 rating=5 status=read
  bookshelf books set 3 review="Loved it"
  bookshelf books set 3 cover=null`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fields, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			patch, err := book.NewPatch(fields)
			if err != nil {
				return err
			}
			result, err := c.app.Books.Patch(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			if result.Changes == 0 && !c.json {
				return fmt.Errorf("book %d not found", id)
			}
			return c.printChanges("updated", result.Changes)
		},
	}
}

func (c *cli) booksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book and its collection memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := c.app.Books.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printChanges("deleted", n)
		},
	}
}

func (c *cli) booksCollectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections <id>",
		Short: "List the collections a book belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			all, err := c.app.Collections.ListForBook(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printCollections(all)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	return id, nil
}

// parseAssignments turns field=value pairs into the raw JSON a patch is built from.
// Rating values are passed as JSON numbers, everything else as strings.
func parseAssignments(pairs []string) (map[string]json.RawMessage, error) {
	fields := make(map[string]json.RawMessage, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected field=value", pair)
		}
		switch {
		case value == "null":
			fields[name] = json.RawMessage("null")
		case name == book.FieldRating.String():
			fields[name] = json.RawMessage(value)
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, err
			}
			fields[name] = encoded
		}
	}
	return fields, nil
}

func flagValue(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
