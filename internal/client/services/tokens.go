package services

import (
	"context"

	"github.com/dmitrijs2005/tradedash/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tradedash/internal/common"
)

// TokenStore persists the session token in the metadata repository. Anyone
// may read it (it satisfies client.TokenSource); only SessionManager writes.
type TokenStore struct {
	repo metadata.Repository
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns the stored token, or "" when there is none.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *TokenStore) save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenMetadataKey, []byte(token))
}

func (s *TokenStore) clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenMetadataKey)
}
