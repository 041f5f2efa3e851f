package service

import (
	"context"
	"strings"

	"library-api/internal/domains/author"
	"library-api/internal/domains/book"
)

// bookService implements book.Service. It holds both repositories
// because book writes must consult the author table: create resolves
// the author by name, update re-validates the author id.
type bookService struct {
	books   book.Repository
	authors author.Repository
}

// NewBookService creates a new book service instance.
func NewBookService(books book.Repository, authors author.Repository) book.Service {
	return &bookService{books: books, authors: authors}
}

func (s *bookService) List(ctx context.Context) ([]book.BookWithAuthor, error) {
	return s.books.List(ctx)
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookWithAuthor, error) {
	return s.books.GetByID(ctx, id)
}

// Create resolves the author name pair first; a miss is
// author.ErrAuthorNotFound and nothing is inserted. First match wins
// when two authors share a name.
func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (int64, error) {
	firstName := strings.TrimSpace(req.AuthorFirstName)
	lastName := strings.TrimSpace(req.AuthorLastName)

	authorID, err := s.authors.FindByName(ctx, firstName, lastName)
	if err != nil {
		return 0, err
	}

	b := book.Book{
		Title:    strings.TrimSpace(req.Title),
		Year:     req.Year,
		Pages:    req.Pages,
		Genre:    req.Genre,
		AuthorID: authorID,
	}

	return s.books.Insert(ctx, b)
}

// Update re-validates the patch's author id against the author table
// before writing, so a dangling or typoed id is rejected instead of
// silently corrupting the relation. Zero rows affected with an existing
// book is a no-op; without one it means the book is gone.
func (s *bookService) Update(ctx context.Context, id int64, patch book.Patch) (bool, error) {
	exists, err := s.authors.ExistsByID(ctx, patch.AuthorID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, author.ErrAuthorNotFound
	}

	affected, err := s.books.Update(ctx, id, patch)
	if err != nil {
		return false, err
	}

	if affected == 0 {
		bookExists, err := s.books.ExistsByID(ctx, id)
		if err != nil {
			return false, err
		}
		if !bookExists {
			return false, book.ErrBookNotFound
		}
		return false, nil
	}

	return true, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	affected, err := s.books.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
