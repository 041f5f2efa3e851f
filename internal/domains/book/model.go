package book

// Genres is the fixed enumerated set a book's genre must belong to.
// Mirrored by a CHECK constraint at the schema level.
var Genres = []string{
	"fantasy",
	"sci-fi",
	"mystery",
	"non-fiction",
	"fiction",
	"romance",
	"horror",
}

// Book is the persisted entity.
type Book struct {
	BookID   int64  `json:"book_id" db:"book_id"`
	Title    string `json:"title" db:"title"`
	Year     int    `json:"year" db:"year"`
	Pages    int    `json:"pages" db:"pages"`
	Genre    string `json:"genre" db:"genre"`
	AuthorID int64  `json:"author_id" db:"author_id"`
}

// BookWithAuthor is the joined row reads return: the book plus its
// author's names, no raw foreign key.
type BookWithAuthor struct {
	BookID    int64  `json:"book_id" db:"book_id"`
	Title     string `json:"title" db:"title"`
	Year      int    `json:"year" db:"year"`
	Pages     int    `json:"pages" db:"pages"`
	Genre     string `json:"genre" db:"genre"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// Patch is the set of columns a partial update may touch. AuthorID is
// always present: every book patch must carry a resolvable author id,
// and it is re-validated against the author table before the update
// runs.
type Patch struct {
	Title    *string
	Year     *int
	Pages    *int
	Genre    *string
	AuthorID int64
}

// HasChanges reports whether the patch touches any attribute besides
// the mandatory author reference.
func (p Patch) HasChanges() bool {
	return p.Title != nil || p.Year != nil || p.Pages != nil || p.Genre != nil
}
