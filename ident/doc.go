// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates the identifiers used across the service.

Wheel ids are short URL-safe nanoids (crypto-random, so practically
collision-free across concurrent creators):

	id, err := ident.NewWheelID()

Request ids are uuids used only for log correlation:

	requestID := ident.NewRequestID()
*/
package ident
