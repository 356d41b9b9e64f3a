// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Mutation action constants
const (
	ActionAddFood = "addFood"
	ActionSpin    = "spin"
	ActionResult  = "result"
)

// Request types

type MutateRequest struct {
	Action string `json:"action"`
	Food   string `json:"food,omitempty"`
	UserID string `json:"userId,omitempty"`
}

// Response types

type InitResponse struct {
	WheelID string `json:"wheelId"`
}

type RefreshCheckResponse struct {
	RefreshTrigger string `json:"refreshTrigger"`
}

// Domain types

// Food is one user's active contribution. Count grows by one on every
// repeat addFood from the same user and acts as the draw weight.
type Food struct {
	Food  string `json:"food"`
	Count int    `json:"count"`
}

type HistoryEntry struct {
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
}

// WheelSession is the unit of game state, stored as JSON under wheel:<id>.
// PendingResult holds the server-side draw made at spin time; Result is only
// set once a result action finalizes the spin.
type WheelSession struct {
	ID            string          `json:"id"`
	Foods         map[string]Food `json:"foods"`
	Spinning      bool            `json:"spinning"`
	PendingResult string          `json:"pendingResult,omitempty"`
	Result        string          `json:"result,omitempty"`
	History       []HistoryEntry  `json:"history"`
	CreatedAt     int64           `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
