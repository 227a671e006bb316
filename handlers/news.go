// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/middleware"
	"github.com/danielhkuo/collectibles/models"
	"github.com/danielhkuo/collectibles/store"
)

type NewsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewNewsHandler(st *store.Store, cfg cliparse.Config) *NewsHandler {
	return &NewsHandler{store: st, cfg: cfg}
}

// GetNews handles GET /api/news?source=&category=&limit=
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.NewsFilter{
		Source:   q.Get("source"),
		Category: q.Get("category"),
	}
	if filter.Source == "" {
		filter.Source = store.FilterAll
	}
	if filter.Category == "" {
		filter.Category = store.FilterAll
	}

	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}

	items, err := h.store.News(r.Context(), filter)
	if err != nil {
		slog.Error("failed to fetch news", "source", filter.Source, "category", filter.Category, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}

	out := make([]models.NewsItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.NewsItem{
			ID:           it.ID,
			Source:       it.Source,
			Category:     it.Category,
			Title:        it.Title,
			URL:          it.URL,
			Summary:      it.Summary,
			PublishedAt:  it.PublishedAt,
			PublishedAgo: humanize.Time(it.PublishedAt),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewsResponse{
		Success:  true,
		Source:   filter.Source,
		Category: filter.Category,
		Items:    out,
	})
}
