package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
)

// APITokenRepository defines the interface for API token data access operations
type APITokenRepository interface {
	// Create persists a new API token
	Create(ctx context.Context, token *domain.APIToken) error

	// FindByID retrieves an API token by its ID
	FindByID(ctx context.Context, id string) (*domain.APIToken, error)

	// FindByUserID retrieves all API tokens for a specific user
	FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error)

	// FindByTokenHash finds a token by the SHA-256 hash of its plaintext
	FindByTokenHash(ctx context.Context, tokenHash string) (*domain.APIToken, error)

	// TouchLastUsed records that the token was just used
	TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error

	// Delete removes an API token by ID
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes all API tokens for a specific user
	DeleteByUserID(ctx context.Context, userID string) error
}
