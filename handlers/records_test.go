// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/collectibles/models"
	"github.com/danielhkuo/collectibles/sheets"
	"github.com/danielhkuo/collectibles/testutil"
)

func TestAppendRecord(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewRecordHandler(st, cfg)

	price := 45.5

	tests := []struct {
		name           string
		handle         http.HandlerFunc
		sheet          string
		requestBody    interface{}
		expectedStatus int
		expectedID     string
		expectedRow    []string
	}{
		{
			name:   "anniversary gets first id",
			handle: handler.AppendAnniversary,
			sheet:  sheets.Anniversary,
			requestBody: models.AnniversaryRequest{
				Title:           "Optimus Prime",
				Series:          "G1",
				ReleaseDate:     "1984-06-01",
				AnniversaryDate: "06-01",
			},
			expectedStatus: http.StatusOK,
			expectedID:     "001",
			expectedRow:    []string{"001", "Optimus Prime", "G1", "1984-06-01", "06-01", ""},
		},
		{
			name:   "checklist renders owned as TRUE",
			handle: handler.AppendChecklist,
			sheet:  sheets.Checklist,
			requestBody: models.ChecklistRequest{
				Title: "Bumblebee",
				Owned: true,
			},
			expectedStatus: http.StatusOK,
			expectedID:     "001",
			expectedRow:    []string{"001", "Bumblebee", "", "TRUE", "", ""},
		},
		{
			name:   "customs keeps explicit id and price",
			handle: handler.AppendCustoms,
			sheet:  sheets.Customs,
			requestBody: models.CustomsRequest{
				ID:     "041",
				Title:  "Nemesis Prime",
				Artist: "Ana",
				Price:  &price,
			},
			expectedStatus: http.StatusOK,
			expectedID:     "041",
			expectedRow:    []string{"041", "Nemesis Prime", "", "Ana", "45.5", "", ""},
		},
		{
			name:   "customs continues after explicit id",
			handle: handler.AppendCustoms,
			sheet:  sheets.Customs,
			requestBody: models.CustomsRequest{
				Title: "Shattered Glass Optimus",
			},
			expectedStatus: http.StatusOK,
			expectedID:     "042",
			expectedRow:    []string{"042", "Shattered Glass Optimus", "", "", "", "", ""},
		},
		{
			name:   "wishlist with empty target price",
			handle: handler.AppendWishlist,
			sheet:  sheets.Wishlist,
			requestBody: models.WishlistRequest{
				Title:    "Fortress Maximus",
				Priority: "high",
				URL:      "https://example.com/fortmax",
			},
			expectedStatus: http.StatusOK,
			expectedID:     "001",
			expectedRow:    []string{"001", "Fortress Maximus", "", "high", "", "https://example.com/fortmax", ""},
		},
		{
			name:           "missing title",
			handle:         handler.AppendWishlist,
			sheet:          sheets.Wishlist,
			requestBody:    models.WishlistRequest{Series: "G1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank title",
			handle:         handler.AppendChecklist,
			sheet:          sheets.Checklist,
			requestBody:    models.ChecklistRequest{Title: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate explicit id",
			handle:         handler.AppendCustoms,
			sheet:          sheets.Customs,
			requestBody:    models.CustomsRequest{ID: "041", Title: "Again"},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/"+tt.sheet, tt.requestBody, nil)
			w := httptest.NewRecorder()

			tt.handle(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Success {
					t.Error("Expected success to be false")
				}
				return
			}

			var resp models.AppendResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success || resp.Sheet != tt.sheet {
				t.Errorf("Unexpected response: %+v", resp)
			}
			if resp.ID != tt.expectedID {
				t.Errorf("Expected id %s, got %s", tt.expectedID, resp.ID)
			}

			rows, err := st.ReadRange(context.Background(), tt.sheet)
			if err != nil {
				t.Fatal(err)
			}
			last := rows[len(rows)-1]
			if strings.Join(last, "|") != strings.Join(tt.expectedRow, "|") {
				t.Errorf("Expected row %q, got %q", tt.expectedRow, last)
			}
		})
	}
}

func TestAppendRecord_InvalidJSON(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/api/wishlist", strings.NewReader("{invalid json}"))
	w := httptest.NewRecorder()

	handler.AppendWishlist(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetNextID(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	get := func(sheet string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/"+sheet+"/next-id", nil)
		req.SetPathValue("sheet", sheet)
		w := httptest.NewRecorder()
		handler.GetNextID(w, req)
		return w
	}

	t.Run("empty sheet", func(t *testing.T) {
		w := get(sheets.Customs)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.NextIDResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.NextID != "001" {
			t.Errorf("Expected 001, got %s", resp.NextID)
		}
	})

	t.Run("after unordered ids", func(t *testing.T) {
		for _, id := range []string{"003", "007", "002"} {
			testutil.AppendTestRow(t, st, sheets.Customs, id, "figure", 7)
		}

		w := get(sheets.Customs)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.NextIDResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.NextID != "008" {
			t.Errorf("Expected 008, got %s", resp.NextID)
		}
		if resp.Sheet != sheets.Customs {
			t.Errorf("Expected sheet customs, got %s", resp.Sheet)
		}
	})

	t.Run("non-numeric ids only", func(t *testing.T) {
		testutil.AppendTestRow(t, st, sheets.Checklist, "abc", "figure", 6)

		w := get(sheets.Checklist)
		var resp models.NextIDResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.NextID != "001" {
			t.Errorf("Expected 001, got %s", resp.NextID)
		}
	})

	t.Run("does not reserve", func(t *testing.T) {
		var first, second models.NextIDResponse
		testutil.AssertJSON(t, get(sheets.Wishlist), &first)
		testutil.AssertJSON(t, get(sheets.Wishlist), &second)
		if first.NextID != second.NextID {
			t.Errorf("Expected repeated calls to agree, got %s and %s", first.NextID, second.NextID)
		}
	})

	t.Run("unknown sheet", func(t *testing.T) {
		w := get("inventory")
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestGetRange(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	testutil.AppendTestRow(t, st, sheets.Anniversary, "001", "Grimlock", 6)
	testutil.AppendTestRow(t, st, sheets.Anniversary, "002", "Slag", 6)

	req := httptest.NewRequest("GET", "/api/anniversary", nil)
	req.SetPathValue("sheet", sheets.Anniversary)
	w := httptest.NewRecorder()

	handler.GetRange(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RangeResponse
	testutil.AssertJSON(t, w, &resp)

	sheet, _ := sheets.Lookup(sheets.Anniversary)
	if strings.Join(resp.Header, ",") != strings.Join(sheet.Columns, ",") {
		t.Errorf("Unexpected header %v", resp.Header)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(resp.Rows))
	}
	if resp.Rows[0][1] != "Grimlock" || resp.Rows[1][1] != "Slag" {
		t.Errorf("Rows not in append order: %v", resp.Rows)
	}
}

func TestGetRange_EmptyAndUnknown(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/wishlist", nil)
	req.SetPathValue("sheet", sheets.Wishlist)
	w := httptest.NewRecorder()
	handler.GetRange(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"rows":[]`) {
		t.Errorf("Expected empty rows array, got %s", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/nope", nil)
	req.SetPathValue("sheet", "nope")
	w = httptest.NewRecorder()
	handler.GetRange(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAppendRecord_StoreFailure(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	st.DB().Close()

	req := testutil.MakeRequest("POST", "/api/wishlist", models.WishlistRequest{Title: "Jetfire"}, nil)
	w := httptest.NewRecorder()
	handler.AppendWishlist(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if strings.Contains(w.Body.String(), "sql:") {
		t.Errorf("Raw driver error leaked: %s", w.Body.String())
	}
}

func TestAppendRecord_LargeExplicitID(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	post := func(body models.CustomsRequest) models.AppendResponse {
		t.Helper()
		req := testutil.MakeRequest("POST", "/api/customs", body, nil)
		w := httptest.NewRecorder()
		handler.AppendCustoms(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.AppendResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	post(models.CustomsRequest{ID: "9223372036854775807", Title: "Metroplex"})

	for _, want := range []string{"9223372036854775808", "9223372036854775809"} {
		resp := post(models.CustomsRequest{Title: "Scramble"})
		if resp.ID != want {
			t.Errorf("Expected id %s, got %s", want, resp.ID)
		}
	}
}

func TestAppendRecord_AllocationExhausted(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewRecordHandler(st, testutil.GetTestConfig())

	// "x001" is not numeric, so the allocator keeps choosing "001", which
	// this index treats as the same key.
	if _, err := st.DB().Exec(`CREATE UNIQUE INDEX idx_customs_bare_id ON customs (ltrim(id, 'x'))`); err != nil {
		t.Fatal(err)
	}
	testutil.AppendTestRow(t, st, sheets.Customs, "x001", "Shadow", 7)

	req := testutil.MakeRequest("POST", "/api/customs", models.CustomsRequest{Title: "Sunstreaker"}, nil)
	w := httptest.NewRecorder()
	handler.AppendCustoms(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success {
		t.Error("Expected success to be false")
	}
	if !strings.Contains(resp.Message, "Could not allocate an id") {
		t.Errorf("Unexpected message: %q", resp.Message)
	}

	rows, err := st.ReadRange(context.Background(), sheets.Customs)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("Expected only the seeded row, got %d rows", len(rows)-1)
	}
}
