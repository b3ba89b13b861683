package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/bookshelf/internal/errs"
	"github.com/marcelsud/bookshelf/internal/validation"
)

type UseCase interface {
	Create(ctx context.Context, draft Draft) (Book, error)
	List(ctx context.Context, filter Filter) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Patch(ctx context.Context, id int64, patch Patch) (PatchResult, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PatchResult reports how many rows an update touched and which fields it set.
type PatchResult struct {
	ID      int64
	Changes int64
	Applied map[string]any
}

type Service struct {
	Repo      Repository
	validator *validation.Validator
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo:      repo,
		validator: validation.New(),
	}
}

func (s *Service) Create(ctx context.Context, draft Draft) (Book, error) {
	draft = draft.Normalize()
	if err := s.validator.Validate(draft); err != nil {
		return Book{}, err
	}
	b := draft.Book()
	id, err := s.Repo.Insert(ctx, b)
	if err != nil {
		return Book{}, errs.Store(fmt.Errorf("inserting book: %w", err))
	}
	b.ID = id
	return b, nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Book, error) {
	all, err := s.Repo.SelectAll(ctx, filter)
	if err != nil {
		return nil, errs.Store(fmt.Errorf("selecting books: %w", err))
	}
	if all == nil {
		all = []Book{}
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	b, err := s.Repo.Select(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Book{}, errs.NotFound("book %d not found", id)
	}
	if err != nil {
		return Book{}, errs.Store(fmt.Errorf("selecting book: %w", err))
	}
	return b, nil
}

func (s *Service) Patch(ctx context.Context, id int64, patch Patch) (PatchResult, error) {
	if patch.IsEmpty() {
		return PatchResult{}, errs.ValidationWrap(ErrNoFields, ErrNoFields.Error())
	}
	n, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return PatchResult{}, errs.Store(fmt.Errorf("updating book: %w", err))
	}
	return PatchResult{
		ID:      id,
		Changes: n,
		Applied: patch.Applied(),
	}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return 0, errs.Store(fmt.Errorf("deleting book: %w", err))
	}
	return n, nil
}
