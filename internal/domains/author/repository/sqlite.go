package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"

	"library-api/internal/domains/author"
)

const (
	dialect      = "sqlite3"
	authorTable  = "author"
	colAuthorID  = "author_id"
	colFirstName = "first_name"
	colLastName  = "last_name"
)

// sqliteRepository implements author.Repository on the shared sqlx
// handle. Every statement is built with goqu in prepared mode, so values
// always travel as bind parameters.
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository creates a new author repository instance.
func NewSQLiteRepository(db *sqlx.DB) author.Repository {
	return &sqliteRepository{db: db}
}

// patchRecord is the fixed allow-list mapping from validated patch
// fields to physical columns. SET clauses are assembled from this record
// and nothing else; client-supplied keys never become SQL text.
func patchRecord(p author.Patch) goqu.Record {
	rec := goqu.Record{}
	if p.FirstName != nil {
		rec[colFirstName] = *p.FirstName
	}
	if p.LastName != nil {
		rec[colLastName] = *p.LastName
	}
	return rec
}

func (r *sqliteRepository) List(ctx context.Context) ([]author.Author, error) {
	query, args, err := goqu.Dialect(dialect).
		From(authorTable).
		Select(colAuthorID, colFirstName, colLastName).
		Order(goqu.I(colAuthorID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build list authors query: %w", err)
	}

	authors := make([]author.Author, 0)
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query, args, err := goqu.Dialect(dialect).
		From(authorTable).
		Select(colAuthorID, colFirstName, colLastName).
		Where(goqu.C(colAuthorID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build get author query: %w", err)
	}

	var a author.Author
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}

	return &a, nil
}

func (r *sqliteRepository) Insert(ctx context.Context, firstName, lastName string) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		Insert(authorTable).
		Rows(goqu.Record{colFirstName: firstName, colLastName: lastName}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert author query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert author: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated author id: %w", err)
	}

	return id, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, patch author.Patch) (int64, error) {
	rec := patchRecord(patch)
	if len(rec) == 0 {
		return 0, fmt.Errorf("author update requires at least one field")
	}

	query, args, err := goqu.Dialect(dialect).
		Update(authorTable).
		Set(rec).
		Where(goqu.C(colAuthorID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build update author query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update author %d: %w", id, err)
	}

	return result.RowsAffected()
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		Delete(authorTable).
		Where(goqu.C(colAuthorID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete author query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author %d: %w", id, err)
	}

	return result.RowsAffected()
}

func (r *sqliteRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := goqu.Dialect(dialect).
		From(authorTable).
		Select(goqu.L("1")).
		Where(goqu.C(colAuthorID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("failed to build author exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check author %d exists: %w", id, err)
	}

	return true, nil
}

func (r *sqliteRepository) FindByName(ctx context.Context, firstName, lastName string) (int64, error) {
	query, args, err := goqu.Dialect(dialect).
		From(authorTable).
		Select(colAuthorID).
		Where(goqu.C(colFirstName).Eq(firstName), goqu.C(colLastName).Eq(lastName)).
		Order(goqu.I(colAuthorID).Asc()).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build find author by name query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, author.ErrAuthorNotFound
		}
		return 0, fmt.Errorf("failed to find author by name: %w", err)
	}

	return id, nil
}
