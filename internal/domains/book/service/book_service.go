package service

import (
	"context"
	"strings"

	"library-api/internal/domains/book"
	"library-api/internal/shared/utils"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.AuthorID == 0 {
		return nil, book.ErrFieldsRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The owning author must exist before the insert is attempted, so a
	// dangling author_id surfaces as not-found rather than a driver error.
	exists, err := s.repo.AuthorExists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrAuthorNotFound
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *bookService) GetByID(ctx context.Context, id int) (*book.Book, error) {
	if id <= 0 {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Update(ctx context.Context, id int, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fetch current state, then overwrite only the supplied fields.
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AuthorID.Present() && *req.AuthorID.Value != current.AuthorID {
		exists, err := s.repo.AuthorExists(ctx, *req.AuthorID.Value)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, book.ErrAuthorNotFound
		}
	}

	req.ApplyToEntity(current)

	return s.repo.Update(ctx, current)
}

func (s *bookService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *bookService) Search(ctx context.Context, filter book.SearchFilter) ([]book.Book, error) {
	filter.Title = strings.TrimSpace(filter.Title)
	if filter.Title != "" {
		filter.Title = utils.EscapeLike(filter.Title)
	}

	books, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}
