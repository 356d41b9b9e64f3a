// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - MutateRequest: action, food, userId

# Response Types

Types for JSON responses:

  - InitResponse: wheelId
  - RefreshCheckResponse: refreshTrigger
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - WheelSession: full game state for one wheel
  - Food: a user's active contribution with its draw weight
  - HistoryEntry: one recorded spin outcome

# Constants

Mutation actions accepted by POST /api/wheel/{id}:

	ActionAddFood = "addFood"
	ActionSpin    = "spin"
	ActionResult  = "result"

Any other action value is a persisted no-op that returns the session
unchanged, matching the legacy client contract.
*/
package models
