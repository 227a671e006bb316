package models

import (
	"strconv"
	"time"
)

// Request types
//
// Each sheet request maps onto the sheet's fixed column order through
// Cells, which omits the id column.

type AnniversaryRequest struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Series          string `json:"series"`
	ReleaseDate     string `json:"release_date"`
	AnniversaryDate string `json:"anniversary_date"`
	Notes           string `json:"notes"`
}

func (r AnniversaryRequest) RecordID() string { return r.ID }
func (r AnniversaryRequest) RecordTitle() string { return r.Title }

func (r AnniversaryRequest) Cells() []string {
	return []string{r.Title, r.Series, r.ReleaseDate, r.AnniversaryDate, r.Notes}
}

type ChecklistRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Series    string `json:"series"`
	Owned     bool   `json:"owned"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
}

func (r ChecklistRequest) RecordID() string { return r.ID }
func (r ChecklistRequest) RecordTitle() string { return r.Title }

func (r ChecklistRequest) Cells() []string {
	return []string{r.Title, r.Series, FormatBool(r.Owned), r.Condition, r.Notes}
}

type CustomsRequest struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	BaseFigure string   `json:"base_figure"`
	Artist     string   `json:"artist"`
	Price      *float64 `json:"price"`
	Status     string   `json:"status"`
	Notes      string   `json:"notes"`
}

func (r CustomsRequest) RecordID() string { return r.ID }
func (r CustomsRequest) RecordTitle() string { return r.Title }

func (r CustomsRequest) Cells() []string {
	return []string{r.Title, r.BaseFigure, r.Artist, FormatNumber(r.Price), r.Status, r.Notes}
}

type WishlistRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Series      string   `json:"series"`
	Priority    string   `json:"priority"`
	TargetPrice *float64 `json:"target_price"`
	URL         string   `json:"url"`
	Notes       string   `json:"notes"`
}

func (r WishlistRequest) RecordID() string { return r.ID }
func (r WishlistRequest) RecordTitle() string { return r.Title }

func (r WishlistRequest) Cells() []string {
	return []string{r.Title, r.Series, r.Priority, FormatNumber(r.TargetPrice), r.URL, r.Notes}
}

type QueryRequest struct {
	SQL  string `json:"sql"`
	Args []any  `json:"args"`
}

// FormatBool renders a checkbox cell
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// FormatNumber renders an optional numeric cell; nil is an empty cell
func FormatNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// Response types

type AppendResponse struct {
	Success bool   `json:"success"`
	Sheet   string `json:"sheet"`
	ID      string `json:"id"`
}

type NextIDResponse struct {
	Success bool   `json:"success"`
	Sheet   string `json:"sheet"`
	NextID  string `json:"next_id"`
}

type RangeResponse struct {
	Success bool       `json:"success"`
	Sheet   string     `json:"sheet"`
	Header  []string   `json:"header"`
	Rows    [][]string `json:"rows"`
}

type PingResponse struct {
	Success    bool   `json:"success"`
	Dialect    string `json:"dialect"`
	ServerTime string `json:"server_time"`
	LatencyMS  int64  `json:"latency_ms"`
}

type Column struct {
	Table    string `json:"table"`
	Column   string `json:"column"`
	DataType string `json:"data_type"`
}

type SchemaResponse struct {
	Success bool     `json:"success"`
	Columns []Column `json:"columns"`
}

type QueryResponse struct {
	Success bool     `json:"success"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type NewsItem struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Summary      string    `json:"summary"`
	PublishedAt  time.Time `json:"published_at"`
	PublishedAgo string    `json:"published_ago"`
}

type NewsResponse struct {
	Success  bool       `json:"success"`
	Source   string     `json:"source"`
	Category string     `json:"category"`
	Items    []NewsItem `json:"items"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
