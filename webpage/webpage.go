// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package webpage embeds the single-page browser client for the wheel.
// The page is an opaque consumer of the JSON API: it polls the session
// every 2s and the refresh trigger every 3s.
package webpage

import _ "embed"

//go:embed index.html
var document []byte

// Document returns the HTML page served at the root path.
func Document() []byte {
	return document
}
