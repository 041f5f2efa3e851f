package author

// Author is the persisted entity. JSON field names mirror the column
// names, which is what clients receive.
type Author struct {
	AuthorID  int64  `json:"author_id" db:"author_id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// Patch is the set of columns a partial update may touch. A nil field
// is left unchanged. The repository translates this struct - and only
// this struct - into SET clauses, so client-supplied keys never reach
// the query text.
type Patch struct {
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the patch carries no effective change.
func (p Patch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil
}
