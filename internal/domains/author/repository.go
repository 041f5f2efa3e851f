package author

import "context"

// Repository defines the author data access operations.
//
// "No row matched" is never an error for writes: Update and Delete
// report rows affected and leave the interpretation (missing target vs
// no-op) to the caller. Reads return ErrAuthorNotFound as a sentinel.
type Repository interface {
	// List returns all authors in insertion order.
	List(ctx context.Context) ([]Author, error)

	// GetByID returns a single author or ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Insert stores a new author and returns the generated id.
	Insert(ctx context.Context, firstName, lastName string) (int64, error)

	// Update applies a non-empty patch and returns rows affected.
	Update(ctx context.Context, id int64, patch Patch) (int64, error)

	// Delete removes the author and returns rows affected. The schema
	// cascades deletion of the author's books.
	Delete(ctx context.Context, id int64) (int64, error)

	// ExistsByID checks existence without fetching the row. Used to
	// validate the book→author reference before a book update runs.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByName resolves an author id from a first/last name pair or
	// returns ErrAuthorNotFound. First match wins when two authors share
	// a name; a known limitation of name-based lookup.
	FindByName(ctx context.Context, firstName, lastName string) (int64, error)
}
