// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Food Wheel API server.

Food Wheel is a small shared-state party game: everyone at the table adds
a food choice to a shared wheel, someone spins it, and the server draws
one contribution at random. Clients poll for updates; a new wheel bumps a
global refresh trigger so every connected client jumps to it.

# Starting the Server

The server runs with a local sqlite file by default:

	go run main.go

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8787 -t sqlite -d foodwheel.db

# Configuration

Optional settings (all have defaults):

  - PORT (-p): Server port (default: 8787)
  - DATABASE_URL (-d): postgres connection string or sqlite path
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - HISTORY_LIMIT (-history-limit): spin history cap per wheel (default: 50)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for the wheel API
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and session types
  - wheel: Session lifecycle, weighted draw, optimistic-concurrency writes
  - kvstore: Versioned key-value table over database/sql
  - ident: Id generation (nanoid wheel ids, uuid request ids)
  - webpage: Embedded browser client
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
