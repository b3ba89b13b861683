package openlibrary

import (
	"encoding/json"
	"strings"

	"github.com/marcelsud/bookshelf/enrichment"
)

// bookData is one entry of a jscmd=data response.
type bookData struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Authors     []author    `json:"authors"`
	Cover       cover       `json:"cover"`
	Identifiers identifiers `json:"identifiers"`
	Description text        `json:"description"`
	Notes       text        `json:"notes"`
	Excerpts    []excerpt   `json:"excerpts"`
}

type author struct {
	Name string `json:"name"`
}

type cover struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type identifiers struct {
	ISBN13 []string `json:"isbn_13"`
	ISBN10 []string `json:"isbn_10"`
}

type excerpt struct {
	Text string `json:"text"`
}

// text accepts both "plain" and {"type": "/type/text", "value": "plain"}.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var typed struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(b, &typed); err != nil {
		return err
	}
	*t = text(typed.Value)
	return nil
}

func (d bookData) record() enrichment.Record {
	authors := make([]string, 0, len(d.Authors))
	for _, a := range d.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return enrichment.Record{
		Title:   strings.TrimSpace(d.Title),
		Authors: authors,
		Cover: enrichment.Cover{
			Small:  d.Cover.Small,
			Medium: d.Cover.Medium,
			Large:  d.Cover.Large,
		},
		Description: d.description(),
		ISBN:        first(d.Identifiers.ISBN13, d.Identifiers.ISBN10),
	}
}

func (d bookData) description() string {
	for _, s := range []string{string(d.Description), string(d.Notes)} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	for _, e := range d.Excerpts {
		if s := strings.TrimSpace(e.Text); s != "" {
			return s
		}
	}
	return ""
}

func first(lists ...[]string) string {
	for _, l := range lists {
		for _, s := range l {
			if s != "" {
				return s
			}
		}
	}
	return ""
}
