package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/internal/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatch(t *testing.T, raw map[string]string) book.Patch {
	t.Helper()
	fields := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		fields[k] = json.RawMessage(v)
	}
	p, err := book.NewPatch(fields)
	require.NoError(t, err)
	return p
}

func TestRepository_InsertAndSelect(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	isbn := "9780441013593"
	id, err := repo.Insert(ctx, book.Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   &isbn,
		Status: book.Unread,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.Select(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	require.NotNil(t, got.ISBN)
	assert.Equal(t, isbn, *got.ISBN)
	assert.Nil(t, got.Cover)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.Review)
	assert.Equal(t, book.Unread, got.Status)
}

func TestRepository_SelectNotFound(t *testing.T) {
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	_, err := repo.Select(context.Background(), 42)
	assert.ErrorIs(t, err, book.ErrNotFound)
}

func TestRepository_SelectAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	empty, err := repo.SelectAll(ctx, book.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := repo.Insert(ctx, book.Book{Title: "First", Author: "A", Status: book.Unread})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, book.Book{Title: "Second", Author: "B", Status: book.Read})
	require.NoError(t, err)

	all, err := repo.SelectAll(ctx, book.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].ID)
	assert.Equal(t, first, all[1].ID)
	assert.Equal(t, book.Read, all[0].Status)
}

func TestRepository_SelectAllByCollection(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	repo := sqlite.NewRepository(db)

	inside := dbtest.InsertBook(t, db, "Inside", "A")
	dbtest.InsertBook(t, db, "Outside", "B")
	res, err := db.Exec(`INSERT INTO collections (title) VALUES ('Shelf')`)
	require.NoError(t, err)
	collectionID, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO book_collections (book_id, collection_id) VALUES (?, ?)`, inside, collectionID)
	require.NoError(t, err)

	books, err := repo.SelectAll(ctx, book.Filter{CollectionID: &collectionID})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Inside", books[0].Title)
}

func TestRepository_UpdateTouchesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	id, err := repo.Insert(ctx, book.Book{Title: "Dune", Author: "Frank Herbert", Status: book.Unread})
	require.NoError(t, err)

	n, err := repo.Update(ctx, id, newPatch(t, map[string]string{"review": `"x"`}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Update(ctx, id, newPatch(t, map[string]string{"rating": `4`, "status": `"reading"`}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.Select(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
	require.NotNil(t, got.Review)
	assert.Equal(t, "x", *got.Review)
	assert.Equal(t, book.Reading, got.Status)
	assert.Equal(t, "Dune", got.Title)
}

func TestRepository_UpdateClearsWithNull(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	cover := "http://covers/1.jpg"
	id, err := repo.Insert(ctx, book.Book{Title: "Dune", Author: "Frank Herbert", Cover: &cover, Status: book.Unread})
	require.NoError(t, err)

	_, err = repo.Update(ctx, id, newPatch(t, map[string]string{"cover": `null`}))
	require.NoError(t, err)

	got, err := repo.Select(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Cover)
}

func TestRepository_UpdateUnknownID(t *testing.T) {
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	n, err := repo.Update(context.Background(), 999, newPatch(t, map[string]string{"rating": `3`}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRepository_UpdateEmptyPatch(t *testing.T) {
	repo := sqlite.NewRepository(dbtest.NewSQLite(t))

	_, err := repo.Update(context.Background(), 1, book.Patch{})
	assert.ErrorIs(t, err, book.ErrNoFields)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	repo := sqlite.NewRepository(db)

	id := dbtest.InsertBook(t, db, "Dune", "Frank Herbert")

	n, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.Select(ctx, id)
	assert.ErrorIs(t, err, book.ErrNotFound)
}
