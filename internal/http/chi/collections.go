package chi

import (
	"net/http"

	"github.com/marcelsud/bookshelf/collection"
)

type collectionResponse struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Icon  *string `json:"icon"`
}

func newCollectionResponses(all []collection.Collection) []collectionResponse {
	result := make([]collectionResponse, 0, len(all))
	for _, c := range all {
		result = append(result, collectionResponse{ID: c.ID, Title: c.Title, Icon: c.Icon})
	}
	return result
}

func getCollections(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := collectionService.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, newCollectionResponses(all))
	})
}

func postCollections(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft collection.Draft
		if err := decodeJSON(r, &draft); err != nil {
			writeError(w, r, err)
			return
		}
		c, err := collectionService.Create(r.Context(), draft)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, envelope{
			Message: "success",
			Data:    collectionResponse{ID: c.ID, Title: c.Title, Icon: c.Icon},
		})
	})
}

func deleteCollection(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		n, err := collectionService.Delete(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeChanges(w, "deleted", n)
	})
}

func getCollectionBooks(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		books, err := collectionService.ListMembers(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, newBookResponses(books))
	})
}

func postCollectionBook(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var member collection.Member
		if err := decodeJSON(r, &member); err != nil {
			writeError(w, r, err)
			return
		}
		n, err := collectionService.AddMember(r.Context(), id, member)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeChanges(w, "added", n)
	})
}

func deleteCollectionBook(collectionService collection.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		bookID, err := pathID(r, "bookId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		n, err := collectionService.RemoveMember(r.Context(), id, bookID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeChanges(w, "removed", n)
	})
}
