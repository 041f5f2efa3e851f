package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // database/sql driver
)

// DB wraps the shared sqlx handle. It is the single shared mutable
// resource of the process: opened once at startup, closed at shutdown,
// injected everywhere else through the container.
type DB struct {
	Conn     *sqlx.DB
	testMode bool
}

// Connect opens the SQLite database.
//
// In test mode the store lives in memory; otherwise it is backed by the
// file at path with WAL journaling, matching the layout the API persists
// between runs. Foreign keys are switched on per connection via DSN
// pragmas so the book→author cascade actually fires.
func Connect(path string, testMode bool) (*DB, error) {
	dsn := fileDSN(path)
	if testMode {
		dsn = memoryDSN()
	}

	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if testMode {
		// Every pooled connection would otherwise get its own private
		// in-memory database. Pin the pool to a single connection so all
		// requests observe the same store.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(1) // SQLite allows one writer; avoid SQLITE_BUSY churn
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	db := &DB{Conn: conn, testMode: testMode}

	if err := db.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

func fileDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
}

func memoryDSN() string {
	return "file::memory:?_pragma=foreign_keys(1)"
}

// HealthCheck verifies the database is reachable.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.Conn.PingContext(ctx)
}

// TestMode reports whether the store is the in-memory variant.
func (db *DB) TestMode() bool {
	return db.testMode
}

// Close releases the underlying handle. Safe to call once at shutdown.
func (db *DB) Close() error {
	return db.Conn.Close()
}
