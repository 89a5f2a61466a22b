package models

import (
	"strconv"
	"time"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login-json.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful credential exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// APIUser is the full user record served by the backend.
type APIUser struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	FullName         *string   `json:"full_name"`
	Role             string    `json:"role"`
	IsActive         bool      `json:"is_active"`
	IsVerified       bool      `json:"is_verified"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

// User is the authenticated-user projection kept in memory by the session.
// Everything else in APIUser is dropped after login.
type User struct {
	ID    string
	Email string
	Name  string
}

// Projection derives the in-memory User: the full name when the backend has
// one, the username otherwise.
func (u APIUser) Projection() User {
	name := u.Username
	if u.FullName != nil && *u.FullName != "" {
		name = *u.FullName
	}
	return User{
		ID:    strconv.FormatInt(u.ID, 10),
		Email: u.Email,
		Name:  name,
	}
}
