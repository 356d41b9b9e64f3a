// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/food-wheel/cliparse"
	"github.com/danielhkuo/food-wheel/handlers"
	"github.com/danielhkuo/food-wheel/middleware"
	"github.com/danielhkuo/food-wheel/webpage"
	"github.com/danielhkuo/food-wheel/wheel"
)

func NewRouter(store *wheel.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	wheelHandler := handlers.NewWheelHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Wheel API
	mux.HandleFunc("POST /api/init", middleware.WithLogging(wheelHandler.Init))
	mux.HandleFunc("GET /api/latest", middleware.WithLogging(wheelHandler.Latest))
	mux.HandleFunc("GET /api/refresh-check", middleware.WithLogging(wheelHandler.RefreshCheck))
	mux.HandleFunc("GET /api/wheel/{id}", middleware.WithLogging(wheelHandler.Get))
	mux.HandleFunc("POST /api/wheel/{id}", middleware.WithLogging(wheelHandler.Mutate))

	// Browser client ({$} keeps everything else falling through to 404)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(webpage.Document())
	})

	// CORS wraps the whole mux so preflights and 404s carry the headers too
	return middleware.CORS(mux)
}
