package service

import (
	"context"
	"strings"

	"library-api/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, author.ErrNameRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetByID(ctx context.Context, id int) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Update(ctx context.Context, id int, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fetch current state, then overwrite only the supplied fields.
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	return s.repo.Update(ctx, current)
}

func (s *authorService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return author.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
