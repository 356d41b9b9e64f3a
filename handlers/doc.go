// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the food wheel API.

# Handler Type

WheelHandler holds the session store and config:

	h := handlers.NewWheelHandler(store, cfg)

# Endpoints

	POST /api/init           → Init (create wheel, returns wheelId)
	GET  /api/latest         → Latest (most recently created wheel)
	GET  /api/refresh-check  → RefreshCheck (polling primitive)
	GET  /api/wheel/{id}     → Get (full session JSON)
	POST /api/wheel/{id}     → Mutate (addFood / spin / result)

# Spin Cycle

A wheel moves idle → spinning → idle:

	addFood  - upsert the user's contribution (400 without food/userId)
	spin     - server draws the outcome, session goes spinning (409 when empty)
	result   - finalizes the pending draw into result + history

Unknown wheel ids return 404 on both read and mutation - a mutation never
fabricates a session. A persistent write conflict surfaces as 409.
*/
package handlers
