package api

import "errors"

var (
	// ErrUnavailable means no usable HTTP response was received.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthExpired means the bearer token was rejected by the store.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrConflict means the vault document changed between read and write
	// and the update precondition failed.
	ErrConflict = errors.New("vault was modified concurrently")
)

// AuthError is a credential rejection from the identity endpoint. Known
// credential error codes are normalized to a uniform user-facing message;
// any other identity error message is passed through verbatim.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
