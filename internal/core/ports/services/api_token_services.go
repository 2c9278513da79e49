package services

import (
	"context"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
)

// APITokenSvc manages personal tokens that let scripts push transactions
// without a browser login. Tokens are sent in the x-api-key header.
type APITokenSvc interface {
	// CreateToken returns the plaintext token, shown to the caller exactly once.
	// A nil expiresIn creates a token that never expires.
	CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)
	ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error)
	// RevokeToken reports apperrors.ErrNotFound for tokens owned by someone else.
	RevokeToken(ctx context.Context, userID, tokenID string) error
	RevokeAllTokens(ctx context.Context, userID string) error
	// ValidateToken resolves a plaintext token to its owner; every failure is apperrors.ErrUnauthorized.
	ValidateToken(ctx context.Context, tokenString string) (*domain.User, error)
}
