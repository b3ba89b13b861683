package sqlite_test

import (
	"context"
	"testing"

	"github.com/marcelsud/bookshelf/book"
	booksqlite "github.com/marcelsud/bookshelf/book/sqlite"
	"github.com/marcelsud/bookshelf/collection"
	"github.com/marcelsud/bookshelf/collection/sqlite"
	"github.com/marcelsud/bookshelf/internal/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlite.Repository, *booksqlite.Repository, *collection.Service) {
	t.Helper()
	db := dbtest.NewSQLite(t)
	repo := sqlite.NewRepository(db)
	books := booksqlite.NewRepository(db)
	return repo, books, collection.NewService(repo, books)
}

func memberIDs(t *testing.T, s *collection.Service, collectionID int64) []int64 {
	t.Helper()
	members, err := s.ListMembers(context.Background(), collectionID)
	require.NoError(t, err)
	ids := make([]int64, 0, len(members))
	for _, b := range members {
		ids = append(ids, b.ID)
	}
	return ids
}

func newBook(t *testing.T, books *booksqlite.Repository, title string) int64 {
	t.Helper()
	id, err := books.Insert(context.Background(), book.Book{Title: title, Author: "x", Status: book.Unread})
	require.NoError(t, err)
	return id
}

func newCollection(t *testing.T, repo *sqlite.Repository, title string) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), collection.Collection{Title: title})
	require.NoError(t, err)
	return id
}

func TestRepository_SelectAllAlphabetical(t *testing.T) {
	ctx := context.Background()
	repo, _, _ := setup(t)

	icon := "📚"
	_, err := repo.Insert(ctx, collection.Collection{Title: "Zen", Icon: &icon})
	require.NoError(t, err)
	newCollection(t, repo, "Art")
	newCollection(t, repo, "Mystery")

	all, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Art", all[0].Title)
	assert.Nil(t, all[0].Icon)
	assert.Equal(t, "Mystery", all[1].Title)
	assert.Equal(t, "Zen", all[2].Title)
	require.NotNil(t, all[2].Icon)
	assert.Equal(t, icon, *all[2].Icon)
}

func TestRepository_AddMemberIdempotent(t *testing.T) {
	ctx := context.Background()
	repo, books, s := setup(t)
	b := newBook(t, books, "Dune")
	c := newCollection(t, repo, "Sci-Fi")

	n, err := repo.AddMember(ctx, c, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.AddMember(ctx, c, b)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.Equal(t, []int64{b}, memberIDs(t, s, c))
}

func TestRepository_RemoveAbsentMember(t *testing.T) {
	ctx := context.Background()
	repo, books, _ := setup(t)
	b := newBook(t, books, "Dune")
	c := newCollection(t, repo, "Sci-Fi")

	n, err := repo.RemoveMember(ctx, c, b)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.AddMember(ctx, c, b)
	require.NoError(t, err)
	n, err = repo.RemoveMember(ctx, c, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRepository_AddMemberMissingBook(t *testing.T) {
	repo, _, _ := setup(t)
	c := newCollection(t, repo, "Sci-Fi")

	_, err := repo.AddMember(context.Background(), c, 999)
	assert.Error(t, err)
}

func TestBookDeleteCascadesMemberships(t *testing.T) {
	ctx := context.Background()
	repo, books, s := setup(t)
	b := newBook(t, books, "Dune")
	other := newBook(t, books, "Emma")
	c1 := newCollection(t, repo, "C1")
	c2 := newCollection(t, repo, "C2")
	for _, c := range []int64{c1, c2} {
		_, err := repo.AddMember(ctx, c, b)
		require.NoError(t, err)
	}
	_, err := repo.AddMember(ctx, c1, other)
	require.NoError(t, err)

	n, err := books.Delete(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, []int64{other}, memberIDs(t, s, c1))
	assert.Empty(t, memberIDs(t, s, c2))
}

func TestCollectionDeleteKeepsBooks(t *testing.T) {
	ctx := context.Background()
	repo, books, s := setup(t)
	b := newBook(t, books, "Dune")
	keep := newCollection(t, repo, "Keep")
	drop := newCollection(t, repo, "Drop")
	for _, c := range []int64{keep, drop} {
		_, err := repo.AddMember(ctx, c, b)
		require.NoError(t, err)
	}

	n, err := repo.Delete(ctx, drop)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	memberships, err := s.ListForBook(ctx, b)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, keep, memberships[0].ID)

	_, err = books.Select(ctx, b)
	assert.NoError(t, err)
}

func TestRepository_SelectByBook(t *testing.T) {
	ctx := context.Background()
	repo, books, _ := setup(t)
	b := newBook(t, books, "Dune")
	newCollection(t, repo, "Unrelated")
	zen := newCollection(t, repo, "Zen")
	art := newCollection(t, repo, "Art")
	for _, c := range []int64{zen, art} {
		_, err := repo.AddMember(ctx, c, b)
		require.NoError(t, err)
	}

	all, err := repo.SelectByBook(ctx, b)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Art", all[0].Title)
	assert.Equal(t, "Zen", all[1].Title)

	none, err := repo.SelectByBook(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
