package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/enrichment"
)

// bookJSON is the JSON form of a book, the same shape the API returns.
type bookJSON struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Cover       *string `json:"cover"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Rating      *int    `json:"rating"`
	Review      *string `json:"review"`
	Status      string  `json:"status"`
}

type collectionJSON struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Icon  *string `json:"icon"`
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printBooks(books []book.Book) error {
	if c.json {
		out := make([]bookJSON, 0, len(books))
		for _, b := range books {
			out = append(out, toBookJSON(b))
		}
		return c.printJSON(out)
	}
	if len(books) == 0 {
		fmt.Fprintln(c.out, "No books found")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSTATUS\tRATING")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Status, rating(b.Rating))
	}
	return w.Flush()
}

func (c *cli) printBook(b book.Book) error {
	if c.json {
		return c.printJSON(toBookJSON(b))
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%d\n", b.ID)
	fmt.Fprintf(w, "Title:\t%s\n", b.Title)
	fmt.Fprintf(w, "Author:\t%s\n", b.Author)
	fmt.Fprintf(w, "Status:\t%s\n", b.Status)
	fmt.Fprintf(w, "Rating:\t%s\n", rating(b.Rating))
	fmt.Fprintf(w, "ISBN:\t%s\n", optional(b.ISBN))
	fmt.Fprintf(w, "Cover:\t%s\n", optional(b.Cover))
	fmt.Fprintf(w, "Description:\t%s\n", optional(b.Description))
	fmt.Fprintf(w, "Review:\t%s\n", optional(b.Review))
	return w.Flush()
}

func (c *cli) printCollections(all []collection.Collection) error {
	if c.json {
		out := make([]collectionJSON, 0, len(all))
		for _, col := range all {
			out = append(out, collectionJSON{ID: col.ID, Title: col.Title, Icon: col.Icon})
		}
		return c.printJSON(out)
	}
	if len(all) == 0 {
		fmt.Fprintln(c.out, "No collections found")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tICON")
	for _, col := range all {
		fmt.Fprintf(w, "%d\t%s\t%s\n", col.ID, col.Title, optional(col.Icon))
	}
	return w.Flush()
}

func (c *cli) printCandidates(candidates []enrichment.Candidate) error {
	if c.json {
		if candidates == nil {
			candidates = []enrichment.Candidate{}
		}
		return c.printJSON(candidates)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(c.out, "No results")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ISBN\tTITLE\tAUTHOR")
	for _, cand := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\n", dash(cand.ISBN), cand.Title, cand.Author)
	}
	return w.Flush()
}

func (c *cli) printChanges(verb string, n int64) error {
	if c.json {
		return c.printJSON(map[string]any{"message": verb, "changes": n})
	}
	fmt.Fprintf(c.out, "%s (%d changed)\n", strings.ToUpper(verb[:1])+verb[1:], n)
	return nil
}

func toBookJSON(b book.Book) bookJSON {
	return bookJSON{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Cover:       b.Cover,
		ISBN:        b.ISBN,
		Description: b.Description,
		Rating:      b.Rating,
		Review:      b.Review,
		Status:      b.Status.String(),
	}
}

func rating(r *int) string {
	if r == nil {
		return "-"
	}
	return strconv.Itoa(*r) + "/5"
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return dash(*s)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
