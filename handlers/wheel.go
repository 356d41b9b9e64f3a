// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/food-wheel/cliparse"
	"github.com/danielhkuo/food-wheel/kvstore"
	"github.com/danielhkuo/food-wheel/middleware"
	"github.com/danielhkuo/food-wheel/models"
	"github.com/danielhkuo/food-wheel/wheel"
)

type WheelHandler struct {
	store *wheel.Store
	cfg   cliparse.Config
}

func NewWheelHandler(store *wheel.Store, cfg cliparse.Config) *WheelHandler {
	return &WheelHandler{store: store, cfg: cfg}
}

// Init handles POST /api/init
func (h *WheelHandler) Init(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Create(r.Context())
	if err != nil {
		slog.Error("failed to create wheel", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create wheel")
		return
	}

	slog.Info("wheel created", "wheel_id", session.ID)

	middleware.JSONResponse(w, http.StatusOK, models.InitResponse{
		WheelID: session.ID,
	})
}

// Latest handles GET /api/latest
func (h *WheelHandler) Latest(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Latest(r.Context())
	if errors.Is(err, wheel.ErrNoLatest) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No wheel found")
		return
	}
	if errors.Is(err, wheel.ErrNotFound) {
		// latest_wheel_id points at a wheel the store no longer has
		middleware.ErrorResponse(w, http.StatusNotFound, "Wheel data not found")
		return
	}
	if err != nil {
		slog.Error("failed to load latest wheel", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}

// RefreshCheck handles GET /api/refresh-check
func (h *WheelHandler) RefreshCheck(w http.ResponseWriter, r *http.Request) {
	trigger, err := h.store.RefreshTrigger(r.Context())
	if err != nil {
		slog.Error("failed to read refresh trigger", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RefreshCheckResponse{
		RefreshTrigger: trigger,
	})
}

// Get handles GET /api/wheel/:id
func (h *WheelHandler) Get(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if wheelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "wheel id is required")
		return
	}

	session, err := h.store.Get(r.Context(), wheelID)
	if errors.Is(err, wheel.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Wheel not found")
		return
	}
	if err != nil {
		slog.Error("failed to load wheel", "wheel_id", wheelID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}

// Mutate handles POST /api/wheel/:id
func (h *WheelHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if wheelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "wheel id is required")
		return
	}

	var req models.MutateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, err := h.store.Mutate(r.Context(), wheelID, req)
	switch {
	case errors.Is(err, wheel.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Wheel not found")
		return
	case errors.Is(err, wheel.ErrFoodRequired):
		middleware.ErrorResponse(w, http.StatusBadRequest, "food and userId are required")
		return
	case errors.Is(err, wheel.ErrNoFoods):
		middleware.ErrorResponse(w, http.StatusConflict, "No foods to spin")
		return
	case errors.Is(err, kvstore.ErrVersionConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Wheel was updated concurrently, try again")
		return
	case err != nil:
		slog.Error("failed to mutate wheel", "wheel_id", wheelID, "action", req.Action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	slog.Info("wheel updated", "wheel_id", wheelID, "action", req.Action)

	middleware.JSONResponse(w, http.StatusOK, session)
}
