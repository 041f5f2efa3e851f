package author

import "context"

// Service defines the author business operations the handlers call.
type Service interface {
	List(ctx context.Context) ([]Author, error)
	Get(ctx context.Context, id int64) (*Author, error)

	// Create stores a new author and returns its generated id.
	Create(ctx context.Context, req *CreateAuthorRequest) (int64, error)

	// Update applies a partial update. The boolean reports whether a row
	// actually changed; ErrAuthorNotFound means the target is missing.
	Update(ctx context.Context, id int64, patch Patch) (bool, error)

	// Delete removes the author (and, through the schema, their books).
	Delete(ctx context.Context, id int64) error
}
