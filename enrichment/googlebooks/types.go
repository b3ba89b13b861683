package googlebooks

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/marcelsud/bookshelf/enrichment"
)

type volumesResponse struct {
	TotalItems int    `json:"totalItems"`
	Items      []item `json:"items"`
}

type item struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string       `json:"title"`
	Subtitle            string       `json:"subtitle"`
	Authors             []string     `json:"authors"`
	Description         string       `json:"description"`
	IndustryIdentifiers []identifier `json:"industryIdentifiers"`
	ImageLinks          imageLinks   `json:"imageLinks"`
}

type identifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
	ExtraLarge     string `json:"extraLarge"`
}

func (v volumeInfo) record() enrichment.Record {
	return enrichment.Record{
		Title:   strings.TrimSpace(v.Title),
		Authors: v.Authors,
		Cover: enrichment.Cover{
			Small:  firstOf(v.ImageLinks.SmallThumbnail),
			Medium: firstOf(v.ImageLinks.Medium, v.ImageLinks.Small, v.ImageLinks.Thumbnail),
			Large:  firstOf(v.ImageLinks.ExtraLarge, v.ImageLinks.Large),
		},
		Description: PlainText(v.Description),
		ISBN:        v.isbn(),
	}
}

// isbn prefers ISBN_13 over ISBN_10.
func (v volumeInfo) isbn() string {
	var isbn10 string
	for _, id := range v.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}
	return isbn10
}

// PlainText strips the HTML Google Books puts in descriptions. Line breaks become newlines.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		p.AppendHtml("\n")
	})
	return strings.TrimSpace(doc.Text())
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
