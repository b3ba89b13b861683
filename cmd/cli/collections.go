package main

import (
	"github.com/marcelsud/bookshelf/collection"
	"github.com/spf13/cobra"
)

func (c *cli) collectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Manage collections",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List collections alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.app.Collections.List(cmd.Context())
			if err != nil {
				return err
			}
			return c.printCollections(all)
		},
	})
	cmd.AddCommand(c.collectionsAddCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a collection; its books are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := c.app.Collections.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printChanges("deleted", n)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "books <id>",
		Short: "List the books in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			books, err := c.app.Collections.ListMembers(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printBooks(books)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add-book <id> <book-id>",
		Short: "Add a book to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, bookID, err := parsePair(args)
			if err != nil {
				return err
			}
			n, err := c.app.Collections.AddMember(cmd.Context(), id, collection.Member{BookID: bookID})
			if err != nil {
				return err
			}
			return c.printChanges("added", n)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove-book <id> <book-id>",
		Short: "Remove a book from a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, bookID, err := parsePair(args)
			if err != nil {
				return err
			}
			n, err := c.app.Collections.RemoveMember(cmd.Context(), id, bookID)
			if err != nil {
				return err
			}
			return c.printChanges("removed", n)
		},
	})
	return cmd
}

func (c *cli) collectionsAddCmd() *cobra.Command {
	var (
		draft collection.Draft
		icon  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Icon = flagValue(cmd, "icon", icon)
			col, err := c.app.Collections.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return c.printCollections([]collection.Collection{col})
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "collection title (required)")
	cmd.Flags().StringVar(&icon, "icon", "", "icon, usually an emoji")
	return cmd
}

func parsePair(args []string) (int64, int64, error) {
	first, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	second, err := parseID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}
