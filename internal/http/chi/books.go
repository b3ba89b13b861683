package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/internal/errs"
)

/*
* bookResponse is the book as the web layer shows it. Absent optional fields are null.
 */
type bookResponse struct {
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

func newBookResponse(b book.Book) bookResponse {
	return bookResponse{
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

func newBookResponses(all []book.Book) []bookResponse {
	result := make([]bookResponse, 0, len(all))
	for _, b := range all {
		result = append(result, newBookResponse(b))
	}
	return result
}

func getBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filter book.Filter
		if raw := r.URL.Query().Get("collectionId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeError(w, r, errs.ValidationWrap(err, "collectionId must be an integer"))
				return
			}
			filter.CollectionID = &id
		}

		all, err := bookService.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, newBookResponses(all))
	})
}

func getBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		b, err := bookService.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, newBookResponse(b))
	})
}

func postBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft book.Draft
		if err := decodeJSON(r, &draft); err != nil {
			writeError(w, r, err)
			return
		}
		b, err := bookService.Create(r.Context(), draft)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, envelope{Message: "success", Data: newBookResponse(b)})
	})
}

// patchBook applies a partial update. An empty body is the same as an empty object.
func patchBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, errs.ValidationWrap(err, "request body must be a JSON object"))
			return
		}
		patch, err := book.NewPatch(fields)
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := bookService.Patch(r.Context(), id, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}

		data := make(map[string]any, len(result.Applied)+1)
		for k, v := range result.Applied {
			data[k] = v
		}
		data["id"] = result.ID
		writeJSON(w, http.StatusOK, envelope{Message: "updated", Data: data, Changes: &result.Changes})
	})
}

func deleteBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		n, err := bookService.Delete(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeChanges(w, "deleted", n)
	})
}

func getBookCollections(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		all, err := collectionService.ListForBook(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, newCollectionResponses(all))
	})
}
