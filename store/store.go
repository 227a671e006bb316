// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/collectibles/sheets"
)

var (
	ErrUnknownSheet        = errors.New("unknown sheet")
	ErrDuplicateID         = errors.New("id already exists")
	ErrColumnCount         = errors.New("wrong number of cells for sheet")
	ErrAllocationExhausted = errors.New("could not allocate a unique id")
)

// Store is the single persistence backend shared by all handlers.
// It is safe for concurrent use; every call reads fresh from the database.
type Store struct {
	db      *sql.DB
	dialect string

	// nextID picks the id for a new row from the rows read in the same
	// transaction. Tests replace it to force collisions.
	nextID func([]sheets.Row) string
}

func New(db *sql.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect, nextID: sheets.ComputeNextID}
}

// DB exposes the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect reports the database type, "postgres" or "sqlite".
func (s *Store) Dialect() string {
	return s.dialect
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func lookup(name string) (sheets.Sheet, error) {
	sheet, ok := sheets.Lookup(name)
	if !ok {
		return sheets.Sheet{}, ErrUnknownSheet
	}
	return sheet, nil
}

// isUniqueViolation reports whether err is a unique constraint failure from
// either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}

	return false
}
