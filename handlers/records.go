// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/middleware"
	"github.com/danielhkuo/collectibles/models"
	"github.com/danielhkuo/collectibles/sheets"
	"github.com/danielhkuo/collectibles/store"
)

// record is implemented by every sheet request in models
type record interface {
	RecordID() string
	RecordTitle() string
	Cells() []string
}

type RecordHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewRecordHandler(st *store.Store, cfg cliparse.Config) *RecordHandler {
	return &RecordHandler{store: st, cfg: cfg}
}

// AppendAnniversary handles POST /api/anniversary
func (h *RecordHandler) AppendAnniversary(w http.ResponseWriter, r *http.Request) {
	var req models.AnniversaryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.appendRecord(w, r, sheets.Anniversary, req)
}

// AppendChecklist handles POST /api/checklist
func (h *RecordHandler) AppendChecklist(w http.ResponseWriter, r *http.Request) {
	var req models.ChecklistRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.appendRecord(w, r, sheets.Checklist, req)
}

// AppendCustoms handles POST /api/customs
func (h *RecordHandler) AppendCustoms(w http.ResponseWriter, r *http.Request) {
	var req models.CustomsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.appendRecord(w, r, sheets.Customs, req)
}

// AppendWishlist handles POST /api/wishlist
func (h *RecordHandler) AppendWishlist(w http.ResponseWriter, r *http.Request) {
	var req models.WishlistRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.appendRecord(w, r, sheets.Wishlist, req)
}

// appendRecord writes rec to the sheet. An explicit id is kept as given;
// otherwise the store allocates the next one.
func (h *RecordHandler) appendRecord(w http.ResponseWriter, r *http.Request, sheet string, rec record) {
	if strings.TrimSpace(rec.RecordTitle()) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	id := strings.TrimSpace(rec.RecordID())
	var err error
	if id != "" {
		err = h.store.AppendRow(r.Context(), sheet, append([]string{id}, rec.Cells()...))
	} else {
		id, err = h.store.AppendWithNextID(r.Context(), sheet, rec.Cells())
	}

	switch {
	case errors.Is(err, store.ErrDuplicateID):
		middleware.ErrorResponse(w, http.StatusConflict, "id already exists")
		return
	case errors.Is(err, store.ErrAllocationExhausted):
		slog.Error("failed to allocate id", "sheet", sheet, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Could not allocate an id, try again")
		return
	case err != nil:
		slog.Error("failed to append record", "sheet", sheet, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save record")
		return
	}

	slog.Info("record appended", "sheet", sheet, "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.AppendResponse{
		Success: true,
		Sheet:   sheet,
		ID:      id,
	})
}

// GetNextID handles GET /api/{sheet}/next-id
// The id is not reserved; appending without an id allocates safely.
func (h *RecordHandler) GetNextID(w http.ResponseWriter, r *http.Request) {
	sheet, ok := sheets.Lookup(r.PathValue("sheet"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown sheet")
		return
	}

	nextID, err := h.store.NextID(r.Context(), sheet.Name)
	if err != nil {
		slog.Error("failed to compute next id", "sheet", sheet.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get next id")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NextIDResponse{
		Success: true,
		Sheet:   sheet.Name,
		NextID:  nextID,
	})
}

// GetRange handles GET /api/{sheet}
// Returns the header and every row in append order
func (h *RecordHandler) GetRange(w http.ResponseWriter, r *http.Request) {
	sheet, ok := sheets.Lookup(r.PathValue("sheet"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown sheet")
		return
	}

	rows, err := h.store.ReadRange(r.Context(), sheet.Name)
	if err != nil {
		slog.Error("failed to read sheet", "sheet", sheet.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read sheet")
		return
	}

	body := [][]string{}
	for _, row := range rows[1:] {
		body = append(body, row)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RangeResponse{
		Success: true,
		Sheet:   sheet.Name,
		Header:  rows[0],
		Rows:    body,
	})
}
