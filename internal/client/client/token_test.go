package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signed(t, jwt.MapClaims{"sub": "a@b.com", "exp": exp.Unix()})

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, got.Equal(exp), "got %v want %v", got, exp)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("T1")
	assert.False(t, ok)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	_, ok := TokenExpiry(signed(t, jwt.MapClaims{"sub": "a@b.com"}))
	assert.False(t, ok)
}
