package domain

import "errors"

// Token validation failures. Each maps to a distinct cause so callers can
// distinguish a corrupt encoding from a bad signature from an elapsed expiry,
// while the HTTP boundary collapses them all into 401.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)
