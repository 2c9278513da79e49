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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const (
	selectUserFields = `
		user_id, email, name, full_name, phone_number, password_hash,
		auth_provider, provider_user_id, email_verified, hourly_wage,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at
	`

	insertUserQuery = `
		INSERT INTO users (
			user_id, email, name, full_name, phone_number, password_hash,
			auth_provider, provider_user_id, email_verified, hourly_wage,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	insertEmptyTransactionsQuery = `
		INSERT INTO user_transactions (user_id, transactions)
		VALUES ($1, '[]'::jsonb)
		ON CONFLICT (user_id) DO NOTHING
	`

	findUserByIDQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	findUserByEmailQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`

	findUserByProviderQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL
	`

	updateUserQuery = `
		UPDATE users
		SET name = $1, full_name = $2, phone_number = $3, hourly_wage = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $7 AND deleted_at IS NULL
	`

	markUserDeletedQuery = `
		UPDATE users
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL
	`
)

// SaveUser inserts the user and its empty transaction document in one transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (err error) {
	m := mapping.ToModelUser(user)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	_, err = tx.Exec(ctx, insertUserQuery,
		m.UserID, m.Email, m.Name, m.FullName, m.PhoneNumber, m.PasswordHash,
		m.AuthProvider, m.ProviderUserID, m.EmailVerified, m.HourlyWage,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	if _, err = tx.Exec(ctx, insertEmptyTransactionsQuery, m.UserID); err != nil {
		return fmt.Errorf("failed to create transaction document: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, findUserByIDQuery, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, findUserByEmailQuery, email)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, findUserByProviderQuery, authProvider, providerUserID)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m models.User
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.UserID, &m.Email, &m.Name, &m.FullName, &m.PhoneNumber, &m.PasswordHash,
		&m.AuthProvider, &m.ProviderUserID, &m.EmailVerified, &m.HourlyWage,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	cmdTag, err := r.Pool.Exec(ctx, updateUserQuery,
		m.Name, m.FullName, m.PhoneNumber, m.HourlyWage,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, markUserDeletedQuery, deletedAt, deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
