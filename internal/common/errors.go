// Package common defines shared constants and sentinel errors used across
// the sync engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNoSession    = errors.New("no active session")
	ErrInvalidToken = errors.New("invalid token")

	// Outbox errors.
	ErrUnknownOperation = errors.New("unknown operation type")
	ErrMalformedPayload = errors.New("malformed operation payload")
)
