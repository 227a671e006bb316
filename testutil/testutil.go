// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/collectibles/cliparse"
	"github.com/danielhkuo/collectibles/db"
	"github.com/danielhkuo/collectibles/store"
)

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestStore creates a fresh sqlite database in a temp dir with the full schema
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store.New(conn, db.DialectSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "test.db",
		DatabaseType: db.DialectSQLite,
		AdminKey:     TestAdminKey,
	}
}

// AppendTestRow appends a row with the given id; the remaining cells are
// filled with the title followed by empty strings
func AppendTestRow(t *testing.T, st *store.Store, sheet, id, title string, width int) {
	t.Helper()

	cells := make([]string, width)
	cells[0] = id
	if width > 1 {
		cells[1] = title
	}
	if err := st.AppendRow(context.Background(), sheet, cells); err != nil {
		t.Fatalf("Failed to append test row: %v", err)
	}
}

// AddTestNews inserts a news item published at the given time
func AddTestNews(t *testing.T, st *store.Store, source, category, title string, at time.Time) string {
	t.Helper()

	it, err := st.AddNews(context.Background(), store.NewsItem{
		Source:      source,
		Category:    category,
		Title:       title,
		PublishedAt: at,
	})
	if err != nil {
		t.Fatalf("Failed to add test news: %v", err)
	}

	return it.ID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
