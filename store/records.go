// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/collectibles/sheets"
)

// maxAllocAttempts bounds how often AppendWithNextID retries after losing a
// race for the same id.
const maxAllocAttempts = 5

// ReadRange returns the sheet's header followed by every row in append order.
func (s *Store) ReadRange(ctx context.Context, name string) ([]sheets.Row, error) {
	sheet, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return readRange(ctx, s.db, sheet)
}

func readRange(ctx context.Context, q querier, sheet sheets.Sheet) ([]sheets.Row, error) {
	query := "SELECT " + strings.Join(sheet.Columns, ", ") + " FROM " + sheet.Name + " ORDER BY row_id"
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet.Name, err)
	}
	defer rows.Close()

	out := []sheets.Row{sheet.Header()}
	for rows.Next() {
		row := make(sheets.Row, len(sheet.Columns))
		dest := make([]any, len(row))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", sheet.Name, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet.Name, err)
	}

	return out, nil
}

// AppendRow appends one row. cells must match the sheet's column order,
// id first.
func (s *Store) AppendRow(ctx context.Context, name string, cells []string) error {
	sheet, err := lookup(name)
	if err != nil {
		return err
	}
	return appendRow(ctx, s.db, sheet, cells)
}

func appendRow(ctx context.Context, q querier, sheet sheets.Sheet, cells []string) error {
	if len(cells) != len(sheet.Columns) {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrColumnCount, sheet.Name, len(sheet.Columns), len(cells))
	}

	placeholders := make([]string, len(cells))
	args := make([]any, len(cells))
	for i, c := range cells {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = c
	}

	query := "INSERT INTO " + sheet.Name + " (" + strings.Join(sheet.Columns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %q", ErrDuplicateID, sheet.Name, cells[0])
		}
		return fmt.Errorf("failed to append to %s: %w", sheet.Name, err)
	}

	return nil
}

// NextID reads the sheet and returns the identifier a new row would get.
// Nothing is reserved.
func (s *Store) NextID(ctx context.Context, name string) (string, error) {
	rows, err := s.ReadRange(ctx, name)
	if err != nil {
		return "", err
	}
	return sheets.ComputeNextID(rows), nil
}

// AppendWithNextID allocates the next identifier and appends the row in one
// transaction. cells holds every column except id. A unique violation means
// another writer took the id first, so the read is repeated.
func (s *Store) AppendWithNextID(ctx context.Context, name string, cells []string) (string, error) {
	sheet, err := lookup(name)
	if err != nil {
		return "", err
	}
	if len(cells) != len(sheet.Columns)-1 {
		return "", fmt.Errorf("%w: %s wants %d, got %d", ErrColumnCount, sheet.Name, len(sheet.Columns)-1, len(cells))
	}

	for attempt := 1; attempt <= maxAllocAttempts; attempt++ {
		id, err := s.tryAppendWithNextID(ctx, sheet, cells)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrDuplicateID) {
			return "", err
		}
		slog.Warn("id allocation collided, retrying", "sheet", sheet.Name, "id", id, "attempt", attempt)
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrAllocationExhausted, sheet.Name, maxAllocAttempts)
}

func (s *Store) tryAppendWithNextID(ctx context.Context, sheet sheets.Sheet, cells []string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := readRange(ctx, tx, sheet)
	if err != nil {
		return "", err
	}
	id := s.nextID(rows)

	row := append(sheets.Row{id}, cells...)
	if err := appendRow(ctx, tx, sheet, row); err != nil {
		return id, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return id, fmt.Errorf("%w: %s %q", ErrDuplicateID, sheet.Name, id)
		}
		return id, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}
