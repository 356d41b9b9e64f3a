// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the food wheel API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	handler := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Wheel API (all JSON):

	POST /api/init          - Create a wheel, repoint latest, bump refresh trigger
	GET  /api/latest        - Most recently created wheel
	GET  /api/refresh-check - Current refresh trigger value
	GET  /api/wheel/{id}    - Full session state
	POST /api/wheel/{id}    - Apply addFood / spin / result

Browser client:

	GET / - Embedded HTML polling client

Anything else is a plain-text 404 from the mux. The returned handler is
the mux wrapped in middleware.CORS, so every response (including 404s)
carries the CORS headers and OPTIONS preflights short-circuit to 204.
*/
package router
