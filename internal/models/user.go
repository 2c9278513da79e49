package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a row of the users table.
type User struct {
	UserID         string              `db:"user_id"`
	Email          string              `db:"email"`
	Name           string              `db:"name"`
	FullName       string              `db:"full_name"`
	PhoneNumber    string              `db:"phone_number"`
	PasswordHash   *string             `db:"password_hash"`
	AuthProvider   string              `db:"auth_provider"`
	ProviderUserID *string             `db:"provider_user_id"`
	EmailVerified  bool                `db:"email_verified"`
	HourlyWage     decimal.NullDecimal `db:"hourly_wage"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
