// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8787)
  - DatabaseURL: postgres connection string or sqlite file path (default: foodwheel.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - HistoryLimit: max spin history entries kept per wheel (default: 50)

# CLI Flags

	-p              Server port
	-d              Database URL or sqlite path
	-t              Database type
	-history-limit  History cap per wheel

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	HISTORY_LIMIT → -history-limit

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first (via godotenv); real environment
variables win over .env entries.

# Validation

ParseFlags returns an error for an unknown database type, a non-numeric
PORT or HISTORY_LIMIT, or a non-positive history limit. Everything has a
usable default, so a bare invocation starts a sqlite-backed server.
*/
package cliparse
