// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FilterAll disables a news filter.
const FilterAll = "all"

type NewsItem struct {
	ID          string
	Source      string
	Category    string
	Title       string
	URL         string
	Summary     string
	PublishedAt time.Time
}

// NewsFilter selects news by source and category. Empty or "all" matches
// everything.
type NewsFilter struct {
	Source   string
	Category string
	Limit    int
}

// News returns matching items, newest first.
func (s *Store) News(ctx context.Context, f NewsFilter) ([]NewsItem, error) {
	var where []string
	var args []any
	if f.Source != "" && f.Source != FilterAll {
		args = append(args, f.Source)
		where = append(where, fmt.Sprintf("source = $%d", len(args)))
	}
	if f.Category != "" && f.Category != FilterAll {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}

	query := "SELECT id, source, category, title, url, summary, published_at FROM news"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY published_at DESC, id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	items := []NewsItem{}
	for rows.Next() {
		var it NewsItem
		if err := rows.Scan(&it.ID, &it.Source, &it.Category, &it.Title, &it.URL, &it.Summary, &it.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return items, nil
}

// AddNews inserts an item, assigning an ID and publish time when missing.
func (s *Store) AddNews(ctx context.Context, it NewsItem) (NewsItem, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.PublishedAt.IsZero() {
		it.PublishedAt = time.Now()
	}
	it.PublishedAt = it.PublishedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO news (id, source, category, title, url, summary, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, it.ID, it.Source, it.Category, it.Title, it.URL, it.Summary, it.PublishedAt)
	if err != nil {
		return NewsItem{}, fmt.Errorf("failed to insert news item: %w", err)
	}

	return it, nil
}
