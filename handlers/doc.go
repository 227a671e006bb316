// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the collectibles API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - RecordHandler: append, read and next-id for the collection sheets
  - DatabaseHandler: connectivity check, schema listing, raw SQL
  - NewsHandler: read-only news feed

Handlers are created via constructor functions that accept *store.Store and
Config:

	recordHandler := handlers.NewRecordHandler(st, cfg)

# Sheets

	POST /api/anniversary   → AppendAnniversary
	POST /api/checklist     → AppendChecklist
	POST /api/customs       → AppendCustoms
	POST /api/wishlist      → AppendWishlist
	GET  /api/{sheet}       → GetRange
	GET  /api/{sheet}/next-id → GetNextID

Appends require a title. A request without an id gets the next sequential
id ("001", "002", ...); a duplicate explicit id is rejected with 409.

# Database

	GET  /api/db/ping   → Ping
	GET  /api/db/schema → Schema
	POST /api/db/query  → Query (X-Admin-Key header)

# News

	GET /api/news?source=&category=&limit=

source and category default to "all".

# Errors

Responses are JSON with a success flag. 400 for bad input, 404 for unknown
sheets, 500 for store failures. The raw error is only logged.
*/
package handlers
