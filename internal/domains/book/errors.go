package book

import "errors"

var (
	// ErrBookNotFound signals that no book row matched the lookup.
	ErrBookNotFound = errors.New("book not found")
)
