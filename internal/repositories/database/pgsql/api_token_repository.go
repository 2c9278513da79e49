package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/ecobudget_backend/internal/core/ports/repositories"
	"github.com/SscSPs/ecobudget_backend/internal/models"
	"github.com/SscSPs/ecobudget_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(db *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const (
	apiTokensTable = "api_tokens"

	selectAPITokenFields = `
		api_token_id, user_id, name, token_hash,
		last_used_at, expires_at, created_at, updated_at
	`

	insertAPITokenQuery = `
		INSERT INTO ` + apiTokensTable + ` (
			user_id, name, token_hash, expires_at
		) VALUES ($1, $2, $3, $4)
		RETURNING ` + selectAPITokenFields

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`

	findAPITokenByUserIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	findAPITokenByHashQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE token_hash = $1 AND deleted_at IS NULL
	`

	touchAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET last_used_at = $2, updated_at = NOW()
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`

	deleteAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`

	deleteAPITokensByUserIDQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL
	`
)

// Create persists a new API token and fills in the generated ID and timestamps.
func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}

	m := mapping.ToModelAPIToken(*token)
	created, err := scanAPIToken(r.Pool.QueryRow(ctx, insertAPITokenQuery, m.UserID, m.Name, m.TokenHash, m.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("api token: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create api token: %w", err)
	}

	token.ID = created.ID
	token.CreatedAt = created.CreatedAt
	token.UpdatedAt = created.UpdatedAt
	return nil
}

// FindByID retrieves an API token by its ID
func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	return r.findOne(ctx, findAPITokenByIDQuery, id)
}

// FindByTokenHash retrieves a live token by the hash of its plaintext
func (r *PgxAPITokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	if tokenHash == "" {
		return nil, apperrors.ErrNotFound
	}
	return r.findOne(ctx, findAPITokenByHashQuery, tokenHash)
}

func (r *PgxAPITokenRepository) findOne(ctx context.Context, query string, arg string) (*domain.APIToken, error) {
	m, err := scanAPIToken(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token: %w", err)
	}
	token := mapping.ToDomainAPIToken(*m)
	return &token, nil
}

// FindByUserID retrieves all live API tokens of a user, newest first
func (r *PgxAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	rows, err := r.Pool.Query(ctx, findAPITokenByUserIDQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list api tokens: %w", err)
	}
	defer rows.Close()

	tokens := []domain.APIToken{}
	for rows.Next() {
		m, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api token: %w", err)
		}
		tokens = append(tokens, mapping.ToDomainAPIToken(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating api tokens: %w", err)
	}
	return tokens, nil
}

func (r *PgxAPITokenRepository) TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	_, err := r.Pool.Exec(ctx, touchAPITokenQuery, id, usedAt)
	if err != nil {
		return fmt.Errorf("failed to update api token usage: %w", err)
	}
	return nil
}

// Delete soft deletes an API token by ID
func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	result, err := r.Pool.Exec(ctx, deleteAPITokenQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete api token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByUserID soft deletes all API tokens of a user
func (r *PgxAPITokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, deleteAPITokensByUserIDQuery, userID); err != nil {
		return fmt.Errorf("failed to delete api tokens of user: %w", err)
	}
	return nil
}

func scanAPIToken(row pgx.Row) (*models.APIToken, error) {
	var token models.APIToken
	err := row.Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&token.TokenHash,
		&token.LastUsedAt,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}
