package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"

	"library-api/internal/domains/book"
)

const (
	dialect     = "sqlite3"
	bookTable   = "book"
	authorTable = "author"
)

// Joined columns every read selects: the book plus the author's names.
var readColumns = []interface{}{
	goqu.I("book.book_id"),
	goqu.I("book.title"),
	goqu.I("book.year"),
	goqu.I("book.pages"),
	goqu.I("book.genre"),
	goqu.I("author.first_name"),
	goqu.I("author.last_name"),
}

// sqliteRepository implements book.Repository on the shared sqlx handle.
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository creates a new book repository instance.
func NewSQLiteRepository(db *sqlx.DB) book.Repository {
	return &sqliteRepository{db: db}
}

// patchRecord is the fixed allow-list mapping from validated patch
// fields to physical columns; SET clauses come from here and nowhere
// else. The author reference is always rewritten, matching the contract
// that every book patch carries a validated author id.
func patchRecord(p book.Patch) goqu.Record {
	rec := goqu.Record{"author_id": p.AuthorID}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Year != nil {
		rec["year"] = *p.Year
	}
	if p.Pages != nil {
		rec["pages"] = *p.Pages
	}
	if p.Genre != nil {
		rec["genre"] = *p.Genre
	}
	return rec
}

func (r *sqliteRepository) List(ctx context.Context) ([]book.BookWithAuthor, error) {
	query, args, err := goqu.Dialect(dialect).
		From(bookTable).
		InnerJoin(goqu.T(authorTable), goqu.On(goqu.I("book.author_id").Eq(goqu.I("author.author_id")))).
		Select(readColumns...).
		Order(goqu.I("book.book_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build list books query: %w", err)
	}

	books := make([]book.BookWithAuthor, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*book.BookWithAuthor, error) {
	query, args, err := goqu.Dialect(dialect).
		From(bookTable).
		InnerJoin(goqu.T(authorTable), goqu.On(goqu.I("book.author_id").Eq(goqu.I("author.author_id")))).
		Select(readColumns...).
		Where(goqu.I("book.book_id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	var b book.BookWithAuthor
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}

	return &b, nil
}

func (r *sqliteRepository) Insert(ctx context.Context, b book.Book) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		Insert(bookTable).
		Rows(goqu.Record{
			"title":     b.Title,
			"year":      b.Year,
			"pages":     b.Pages,
			"genre":     b.Genre,
			"author_id": b.AuthorID,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert book query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated book id: %w", err)
	}

	return id, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, patch book.Patch) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		Update(bookTable).
		Set(patchRecord(patch)).
		Where(goqu.C("book_id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build update book query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update book %d: %w", id, err)
	}

	return result.RowsAffected()
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		Delete(bookTable).
		Where(goqu.C("book_id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete book query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete book %d: %w", id, err)
	}

	return result.RowsAffected()
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := goqu.Dialect(dialect).
		From(bookTable).
		Select(goqu.L("1")).
		Where(goqu.C("book_id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("failed to build book exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check book %d exists: %w", id, err)
	}

	return true, nil
}
