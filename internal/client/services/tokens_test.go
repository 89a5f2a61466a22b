package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/tradedash/internal/client/client"
	"github.com/dmitrijs2005/tradedash/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "tokens.db"))
	require.NoError(t, err)
	defer db.Close()

	store := NewTokenStore(metadata.NewSQLiteRepository(db))

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.save(ctx, "T1"))
	require.NoError(t, store.save(ctx, "T2"))
	tok, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", tok)

	require.NoError(t, store.clear(ctx))
	require.NoError(t, store.clear(ctx))
	tok, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestTokenStore_IsTokenSource(t *testing.T) {
	var _ client.TokenSource = (*TokenStore)(nil)
}
