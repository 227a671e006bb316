// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the collectibles API server.

The server backs a personal collectibles tracker. Client forms post records
to four sheets (anniversary, checklist, customs, wishlist), each a fixed
column layout with a sequential three-digit id.

# Starting the Server

With no configuration it serves a local sqlite file on port 3318:

	go run .

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: collectibles.db for sqlite)
  - ADMIN_KEY (--admin-key): Enables POST /api/db/query
  - ALLOWED_ORIGIN (--origin): CORS origin

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (records, database, news)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: The single persistence backend
  - sheets: Sheet layouts and id allocation
  - auth: Admin key checks
  - db: Connection and schema creation
  - cliparse: Configuration parsing

The operator CLI lives in cmd/collectiblesctl.
*/
package main
