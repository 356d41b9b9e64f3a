// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/food-wheel/cliparse"
	"github.com/danielhkuo/food-wheel/kvstore"
	"github.com/danielhkuo/food-wheel/models"
	"github.com/danielhkuo/food-wheel/wheel"
	_ "modernc.org/sqlite"
)

// SetupTestStore creates a fresh in-memory kv store with the schema applied
func SetupTestStore(t *testing.T) *kvstore.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// In-memory sqlite gives every connection its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := kvstore.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return kvstore.New(db)
}

// SetupWheelStore creates a session store over a fresh in-memory kv store
func SetupWheelStore(t *testing.T) *wheel.Store {
	t.Helper()
	return wheel.NewStore(SetupTestStore(t), GetTestConfig().HistoryLimit)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8787,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		HistoryLimit: 50,
	}
}

// CreateTestWheel creates a session through the store and returns its id
func CreateTestWheel(t *testing.T, store *wheel.Store) string {
	t.Helper()

	session, err := store.Create(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test wheel: %v", err)
	}
	return session.ID
}

// AddTestFood records a contribution on a wheel
func AddTestFood(t *testing.T, store *wheel.Store, wheelID, food, userID string) {
	t.Helper()

	_, err := store.Mutate(context.Background(), wheelID, models.MutateRequest{
		Action: models.ActionAddFood,
		Food:   food,
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("Failed to add test food: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
