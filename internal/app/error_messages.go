// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings the HTTP surface writes into error
// bodies when no service error text can be shown.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "request body is not valid JSON"

	// MsgRequestBodyTooLarge is returned when a body exceeds the read limit.
	MsgRequestBodyTooLarge = "request body is too large"

	// MsgInternalServerError replaces the text of unexpected failures so
	// driver details never reach the caller.
	MsgInternalServerError = "internal server error"
)
