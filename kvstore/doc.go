// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore provides the durable key-value mapping the wheel state lives in.

# Schema

A single table:

	kv(key TEXT PRIMARY KEY, value TEXT NOT NULL, version BIGINT NOT NULL)

CreateSchema is idempotent and must run once at startup:

	if err := kvstore.CreateSchema(db); err != nil { ... }

The SQL is portable across the two supported drivers (modernc.org/sqlite
and lib/pq); positional $1 parameters work on both.

# Operations

  - Get: value + version, ok=false when absent
  - Put: unconditional upsert (used for the global pointers)
  - PutVersion: conditional write, fails with ErrVersionConflict when the
    stored version moved

PutVersion is the serialization point for session mutations: callers read a
session with its version, mutate in memory, and write back conditionally,
retrying on conflict instead of silently losing a concurrent update.
*/
package kvstore
