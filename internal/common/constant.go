// Package common contains shared constants and sentinel errors used across
// tradedash components.
package common

// TokenMetadataKey is the metadata key under which the session token is
// persisted in client-local storage.
const TokenMetadataKey = "token"

// HTTP header names set on every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerScheme            = "Bearer"
)
