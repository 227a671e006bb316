// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the collectibles API.

# Route Registration

NewRouter returns the ServeMux wrapped in CORS:

	handler := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Sheets:

	POST /api/anniversary     - Append anniversary record
	POST /api/checklist       - Append checklist record
	POST /api/customs         - Append custom figure
	POST /api/wishlist        - Append wishlist entry
	GET  /api/{sheet}         - Header and rows
	GET  /api/{sheet}/next-id - Next sequential id (not reserved)

Database:

	GET  /api/db/ping   - Connectivity check
	GET  /api/db/schema - Tables and columns
	POST /api/db/query  - Raw SQL (requires X-Admin-Key)

News:

	GET /api/news?source=&category=

# Handler Initialization

The router creates handler instances with dependency injection:

	recordHandler := handlers.NewRecordHandler(st, cfg)
	databaseHandler := handlers.NewDatabaseHandler(st, cfg)
	newsHandler := handlers.NewNewsHandler(st, cfg)

All handlers share one store; main owns its lifecycle.
*/
package router
