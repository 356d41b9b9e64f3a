// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// 12 URL-safe nanoid chars is ~71 bits of entropy, plenty for wheel ids
// shared through URL path segments.
const wheelIDLength = 12

// NewWheelID returns a collision-resistant random wheel id.
func NewWheelID() (string, error) {
	id, err := gonanoid.New(wheelIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate wheel id: %w", err)
	}
	return id, nil
}

// NewRequestID returns a uuid used to correlate log lines for one request.
func NewRequestID() string {
	return uuid.NewString()
}
