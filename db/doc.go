// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Two database types are supported, postgres (lib/pq) and sqlite
(modernc.org/sqlite):

	conn, err := db.Open(ctx, db.DialectPostgres, "postgres://...")

Open pings before returning. sqlite connections are limited to one open
connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

One table per sheet, named after the sheet (anniversary, checklist, customs,
wishlist). Cells are TEXT in the sheet's column order, plus:

  - row_id: auto-incrementing primary key, preserves append order
  - id: UNIQUE record identifier
  - created_at: insert time

The news table holds read-only articles keyed by source and category.
*/
package db
