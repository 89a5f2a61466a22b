// Package client is the request layer of the tradedash client.
//
// # Overview
//
// The package provides:
//  1. Narrow API contracts (AuthAPI, MarketAPI, TradingAPI, and the
//     combined Client) used by the services layer.
//  2. HTTPClient, the concrete REST implementation. Every request carries
//     Content-Type: application/json and a fresh X-Request-ID; when the
//     TokenSource yields a token it also carries Authorization: Bearer.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite database and the embedded goose migrations.
//
// # Error Handling
//
// Every failure is an *APIError whose Error() is a single human-readable
// message. For non-2xx answers the message is the backend's string "detail"
// field when present, "HTTP <code>: <status text>" otherwise. APIError
// matches ErrUnauthorized, ErrNotFound and ErrUnavailable with errors.Is.
//
// # Tokens
//
// HTTPClient never stores tokens. It reads one per call from its
// TokenSource, or from WithAccessToken when the caller needs to try a token
// that is not persisted yet.
package client
