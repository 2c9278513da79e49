package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ecobudget_backend/internal/core/ports/services"
	"github.com/SscSPs/ecobudget_backend/internal/utils"
)

// APITokenPrefix marks personal API tokens so they are recognisable in logs and secret scanners.
const APITokenPrefix = "eb_"

const apiTokenBytes = 32

// apiTokenService implements the APITokenSvc interface
type apiTokenService struct {
	BaseService
	tokenRepo repositories.APITokenRepository
	userSvc   portssvc.UserReaderSvc
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo repositories.APITokenRepository, userSvc portssvc.UserReaderSvc) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo: tokenRepo,
		userSvc:   userSvc,
	}
}

var _ portssvc.APITokenSvc = (*apiTokenService)(nil)

// CreateToken generates a new API token for the user
func (s *apiTokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	name = strings.TrimSpace(name)
	if userID == "" {
		return "", nil, fmt.Errorf("user ID is required: %w", apperrors.ErrValidation)
	}
	if name == "" {
		return "", nil, fmt.Errorf("token name is required: %w", apperrors.ErrValidation)
	}

	token, err := utils.GenerateSecureToken(APITokenPrefix, apiTokenBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := time.Now().Add(*expiresIn)
		expiresAt = &expiry
	}

	apiToken := &domain.APIToken{
		UserID:    userID,
		Name:      name,
		TokenHash: utils.HashToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(ctx, apiToken); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	// the plaintext is never stored and is only returned here
	return token, apiToken, nil
}

// ListTokens returns all API tokens for a user
func (s *apiTokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	tokens, err := s.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// RevokeToken deletes a specific API token for a user
func (s *apiTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to find token: %w", err)
	}
	// someone else's token is reported as missing
	if token.UserID != userID {
		return fmt.Errorf("token %s: %w", tokenID, apperrors.ErrNotFound)
	}

	if err := s.tokenRepo.Delete(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// RevokeAllTokens deletes all API tokens for a user
func (s *apiTokenService) RevokeAllTokens(ctx context.Context, userID string) error {
	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke all tokens: %w", err)
	}
	return nil
}

// ValidateToken checks if a token is valid and returns the associated user
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if !strings.HasPrefix(tokenString, APITokenPrefix) {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokenRepo.FindByTokenHash(ctx, utils.HashToken(tokenString))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if token.ExpiredAt(time.Now()) {
		if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
			s.LogError(ctx, err, "Failed to revoke expired API token", slog.String("token_id", token.ID))
		}
		return nil, fmt.Errorf("token has expired: %w", apperrors.ErrUnauthorized)
	}

	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to record API token usage", slog.String("token_id", token.ID))
	}

	user, err := s.userSvc.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
