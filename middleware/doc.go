// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /api/init", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms). The request id is a fresh uuid per request.

# CORS Middleware

Enable cross-origin requests for any frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin with methods GET, POST, PUT, DELETE, OPTIONS and the
Content-Type header. Preflight OPTIONS requests are answered with 204
before they reach the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Wheel not found")

ErrorResponse bodies are {"error": "<message>"}, the shape the browser
client expects.

Parse JSON request bodies:

	var req models.MutateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
