package book

import "context"

// Service defines the book business operations. Cross-entity checks
// live here: create resolves the author by name, update re-validates
// the author id before anything is written.
type Service interface {
	List(ctx context.Context) ([]BookWithAuthor, error)
	Get(ctx context.Context, id int64) (*BookWithAuthor, error)

	// Create resolves the author name pair and stores the book.
	// Returns author.ErrAuthorNotFound when the pair matches nothing;
	// authors are never created implicitly.
	Create(ctx context.Context, req *CreateBookRequest) (int64, error)

	// Update verifies the patch's author id exists, then applies the
	// patch. The boolean reports whether a row actually changed.
	// Returns ErrBookNotFound or author.ErrAuthorNotFound.
	Update(ctx context.Context, id int64, patch Patch) (bool, error)

	// Delete removes the book. Returns ErrBookNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
