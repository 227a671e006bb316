// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/collectibles/db"
)

type PingResult struct {
	Dialect    string
	ServerTime string
	Latency    time.Duration
}

type ColumnInfo struct {
	Table    string `json:"table"`
	Column   string `json:"column"`
	DataType string `json:"data_type"`
}

// QueryResult holds rows as JSON-friendly values; []byte cells become strings.
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Ping checks connectivity and asks the server for its clock.
func (s *Store) Ping(ctx context.Context) (PingResult, error) {
	start := time.Now()
	if err := s.db.PingContext(ctx); err != nil {
		return PingResult{}, fmt.Errorf("database ping failed: %w", err)
	}

	var now string
	if err := s.db.QueryRowContext(ctx, "SELECT CURRENT_TIMESTAMP").Scan(&now); err != nil {
		return PingResult{}, fmt.Errorf("failed to read server time: %w", err)
	}

	return PingResult{
		Dialect:    s.dialect,
		ServerTime: now,
		Latency:    time.Since(start),
	}, nil
}

const postgresColumns = `
	SELECT table_name, column_name, data_type
	FROM information_schema.columns
	WHERE table_schema = current_schema()
	ORDER BY table_name, ordinal_position
`

const sqliteColumns = `
	SELECT m.name, p.name, p.type
	FROM sqlite_master AS m
	JOIN pragma_table_info(m.name) AS p
	WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%'
	ORDER BY m.name, p.cid
`

// Schema lists every column of every user table.
func (s *Store) Schema(ctx context.Context) ([]ColumnInfo, error) {
	var query string
	switch s.dialect {
	case db.DialectPostgres:
		query = postgresColumns
	case db.DialectSQLite:
		query = sqliteColumns
	default:
		return nil, fmt.Errorf("%w: %q", db.ErrUnknownDialect, s.dialect)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect schema: %w", err)
	}
	defer rows.Close()

	columns := []ColumnInfo{}
	for rows.Next() {
		var c ColumnInfo
		if err := rows.Scan(&c.Table, &c.Column, &c.DataType); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to introspect schema: %w", err)
	}

	return columns, nil
}

// Query runs an arbitrary statement. Statements that produce no result set
// return empty Columns and Rows.
func (s *Store) Query(ctx context.Context, statement string, args ...any) (QueryResult, error) {
	rows, err := s.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to read columns: %w", err)
	}

	result := QueryResult{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return QueryResult{}, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return QueryResult{}, fmt.Errorf("query failed: %w", err)
	}

	return result, nil
}
