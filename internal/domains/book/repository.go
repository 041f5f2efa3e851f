package book

import "context"

// Repository defines the book data access operations. Reads return the
// author-joined shape; writes report rows affected and leave the
// interpretation to the service.
type Repository interface {
	// List returns all books joined with their author's names, in
	// insertion order.
	List(ctx context.Context) ([]BookWithAuthor, error)

	// GetByID returns a single joined row or ErrBookNotFound.
	GetByID(ctx context.Context, id int64) (*BookWithAuthor, error)

	// Insert stores a new book and returns the generated id. The author
	// id must have been resolved beforehand.
	Insert(ctx context.Context, b Book) (int64, error)

	// Update applies the patch (including the author reference) and
	// returns rows affected.
	Update(ctx context.Context, id int64, patch Patch) (int64, error)

	// Delete removes the book and returns rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
