// Package models defines the wire records exchanged with the trading backend
// and the client-side projections derived from them.
package models
