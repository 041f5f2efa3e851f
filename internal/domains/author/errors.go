package author

import "errors"

var (
	// ErrAuthorNotFound signals that no author row matched the lookup.
	// This is an ordinary outcome for the handler to interpret, never an
	// infrastructure failure.
	ErrAuthorNotFound = errors.New("author not found")
)
