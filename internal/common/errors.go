// Package common defines shared constants and sentinel errors used across
// the client layers of tradedash. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrSuperseded is returned by a session transition that lost to a
	// newer one (typically a logout while a login was in flight).
	ErrSuperseded = errors.New("superseded by a newer session change")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
