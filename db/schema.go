// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/collectibles/sheets"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	stmts, err := Schema(dialect)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Schema returns the DDL statements for the given dialect, one per element.
func Schema(dialect string) ([]string, error) {
	var pk string
	switch dialect {
	case DialectPostgres:
		pk = "BIGSERIAL PRIMARY KEY"
	case DialectSQLite:
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	var stmts []string
	for _, s := range sheets.All() {
		stmts = append(stmts, sheetTable(s, pk))
	}
	stmts = append(stmts, newsTable, newsIndex)

	return stmts, nil
}

// sheetTable stores every cell as TEXT. row_id keeps append order and the
// UNIQUE id column is what makes concurrent allocation safe.
func sheetTable(s sheets.Sheet, pk string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", s.Name)
	fmt.Fprintf(&b, "    row_id %s,\n", pk)
	b.WriteString("    id TEXT NOT NULL UNIQUE,\n")
	for _, col := range s.Columns[1:] {
		fmt.Fprintf(&b, "    %s TEXT NOT NULL DEFAULT '',\n", col)
	}
	b.WriteString("    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP\n)")
	return b.String()
}

const newsTable = `
CREATE TABLE IF NOT EXISTS news (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL,
    url TEXT NOT NULL DEFAULT '',
    summary TEXT NOT NULL DEFAULT '',
    published_at TIMESTAMP NOT NULL
)`

const newsIndex = `CREATE INDEX IF NOT EXISTS idx_news_source_category ON news(source, category)`
