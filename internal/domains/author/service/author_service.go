package service

import (
	"context"
	"strings"

	"library-api/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository // injected; see pkg/container
}

// NewAuthorService creates a new author service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (int64, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	return s.repo.Insert(ctx, firstName, lastName)
}

// Update applies the patch and interprets the rows-affected count.
// Zero rows with an existing target is a no-op, not a failure; zero rows
// without a target means the author is gone.
func (s *authorService) Update(ctx context.Context, id int64, patch author.Patch) (bool, error) {
	affected, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return false, err
	}

	if affected == 0 {
		exists, err := s.repo.ExistsByID(ctx, id)
		if err != nil {
			return false, err
		}
		if !exists {
			return false, author.ErrAuthorNotFound
		}
		return false, nil
	}

	return true, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}
