// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string or sqlite file (default: collectibles.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Enables POST /api/db/query when set
  - AllowedOrigin: CORS origin; empty echoes the request origin

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--origin      Allowed CORS origin
	--admin-key   Admin key

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ALLOWED_ORIGIN → --origin
	ADMIN_KEY      → --admin-key

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file first; it never overrides variables that are already set.

# Validation

ParseFlags returns an error when PORT is not a number, when DATABASE_TYPE is
unknown, or when postgres is selected without a URL.
*/
package cliparse
