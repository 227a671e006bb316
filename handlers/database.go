// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/collectibles/auth"
	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/middleware"
	"github.com/danielhkuo/collectibles/models"
	"github.com/danielhkuo/collectibles/store"
)

type DatabaseHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewDatabaseHandler(st *store.Store, cfg cliparse.Config) *DatabaseHandler {
	return &DatabaseHandler{store: st, cfg: cfg}
}

// Ping handles GET /api/db/ping
func (h *DatabaseHandler) Ping(w http.ResponseWriter, r *http.Request) {
	res, err := h.store.Ping(r.Context())
	if err != nil {
		slog.Error("database ping failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database unreachable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PingResponse{
		Success:    true,
		Dialect:    res.Dialect,
		ServerTime: res.ServerTime,
		LatencyMS:  res.Latency.Milliseconds(),
	})
}

// Schema handles GET /api/db/schema
func (h *DatabaseHandler) Schema(w http.ResponseWriter, r *http.Request) {
	cols, err := h.store.Schema(r.Context())
	if err != nil {
		slog.Error("failed to introspect schema", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read schema")
		return
	}

	out := make([]models.Column, 0, len(cols))
	for _, c := range cols {
		out = append(out, models.Column(c))
	}

	middleware.JSONResponse(w, http.StatusOK, models.SchemaResponse{
		Success: true,
		Columns: out,
	})
}

// Query handles POST /api/db/query
// Runs the given SQL as-is. Requires X-Admin-Key.
func (h *DatabaseHandler) Query(w http.ResponseWriter, r *http.Request) {
	err := auth.ValidateAdminKey(r.Header.Get(auth.AdminKeyHeader), h.cfg.AdminKey)
	if errors.Is(err, auth.ErrAdminKeyNotConfigured) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Raw SQL is disabled")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.QueryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.SQL) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sql is required")
		return
	}

	res, err := h.store.Query(r.Context(), req.SQL, req.Args...)
	if err != nil {
		slog.Error("raw query failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("raw query executed", "columns", len(res.Columns), "rows", len(res.Rows))

	middleware.JSONResponse(w, http.StatusOK, models.QueryResponse{
		Success: true,
		Columns: res.Columns,
		Rows:    res.Rows,
	})
}
