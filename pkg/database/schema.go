package database

import (
	"context"
	"fmt"
)

// Schema of the catalog: two tables, one cascading foreign key.
// Genres are constrained at the schema level in addition to request
// validation, so no write path can smuggle free text in.
const schema = `
CREATE TABLE IF NOT EXISTS author (
    author_id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS book (
    book_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    year INTEGER NOT NULL,
    pages INTEGER NOT NULL,
    genre TEXT NOT NULL
        CHECK (genre IN (
            'fantasy',
            'sci-fi',
            'mystery',
            'non-fiction',
            'fiction',
            'romance',
            'horror'
        )),
    author_id INTEGER NOT NULL,
    FOREIGN KEY (author_id) REFERENCES author (author_id)
        ON DELETE CASCADE
);
`

// EnsureSchema creates the author and book tables if they do not exist.
// Idempotent; runs at every startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
