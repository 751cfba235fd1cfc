// Package common defines shared sentinel errors used across client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks local input problems (blank credentials, no vault
	// selected) caught before any network call.
	ErrValidation = errors.New("validation error")

	// ErrSessionExpired is returned when a previously valid token is rejected
	// by the remote store. The stored session has already been cleared by the
	// time a caller sees this error.
	ErrSessionExpired = errors.New("session expired")
)
