package collection

import (
	"context"
	"fmt"

	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/marcelsud/bookshelf/internal/validation"
)

type UseCase interface {
	Create(ctx context.Context, draft Draft) (Collection, error)
	List(ctx context.Context) ([]Collection, error)
	Delete(ctx context.Context, id int64) (int64, error)
	AddMember(ctx context.Context, collectionID int64, member Member) (int64, error)
	RemoveMember(ctx context.Context, collectionID, bookID int64) (int64, error)
	ListMembers(ctx context.Context, collectionID int64) ([]book.Book, error)
	ListForBook(ctx context.Context, bookID int64) ([]Collection, error)
}

type Service struct {
	Repo      Repository
	Books     book.Reader
	validator *validation.Validator
}

func NewService(repo Repository, books book.Reader) *Service {
	return &Service{
		Repo:      repo,
		Books:     books,
		validator: validation.New(),
	}
}

func (s *Service) Create(ctx context.Context, draft Draft) (Collection, error) {
	draft = draft.Normalize()
	if err := s.validator.Validate(draft); err != nil {
		return Collection{}, err
	}
	c := draft.Collection()
	id, err := s.Repo.Insert(ctx, c)
	if err != nil {
		return Collection{}, errs.Store(fmt.Errorf("inserting collection: %w", err))
	}
	c.ID = id
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Collection, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, errs.Store(fmt.Errorf("selecting collections: %w", err))
	}
	return nonNil(all), nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return 0, errs.Store(fmt.Errorf("deleting collection: %w", err))
	}
	return n, nil
}

// AddMember links a book to a collection. Adding an existing edge reports 0 changes.
func (s *Service) AddMember(ctx context.Context, collectionID int64, member Member) (int64, error) {
	if err := s.validator.Validate(member); err != nil {
		return 0, err
	}
	n, err := s.Repo.AddMember(ctx, collectionID, member.BookID)
	if err != nil {
		return 0, errs.Store(fmt.Errorf("adding book to collection: %w", err))
	}
	return n, nil
}

// RemoveMember unlinks a book from a collection. A missing edge reports 0 changes.
func (s *Service) RemoveMember(ctx context.Context, collectionID, bookID int64) (int64, error) {
	n, err := s.Repo.RemoveMember(ctx, collectionID, bookID)
	if err != nil {
		return 0, errs.Store(fmt.Errorf("removing book from collection: %w", err))
	}
	return n, nil
}

// ListMembers returns the collection's books, newest first.
func (s *Service) ListMembers(ctx context.Context, collectionID int64) ([]book.Book, error) {
	books, err := s.Books.SelectAll(ctx, book.Filter{CollectionID: &collectionID})
	if err != nil {
		return nil, errs.Store(fmt.Errorf("selecting collection books: %w", err))
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

// ListForBook returns the collections the book belongs to.
func (s *Service) ListForBook(ctx context.Context, bookID int64) ([]Collection, error) {
	all, err := s.Repo.SelectByBook(ctx, bookID)
	if err != nil {
		return nil, errs.Store(fmt.Errorf("selecting book collections: %w", err))
	}
	return nonNil(all), nil
}

func nonNil(c []Collection) []Collection {
	if c == nil {
		return []Collection{}
	}
	return c
}
