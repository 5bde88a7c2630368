package service

import (
	"context"

	"kanakku/internal/domain/entity"
)

// IdentityVerifier validates bearer tokens issued by the identity provider.
type IdentityVerifier interface {
	// Verify checks the token and returns the identity it was issued for.
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
