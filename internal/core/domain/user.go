package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthProviderType identifies how a user signs in.
type AuthProviderType string

const (
	ProviderLocal  AuthProviderType = "LOCAL"
	ProviderGoogle AuthProviderType = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string           `json:"userID"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	FullName       string           `json:"fullName"`
	PhoneNumber    string           `json:"phoneNumber"`
	PasswordHash   *string          `json:"-"`
	AuthProvider   AuthProviderType `json:"authProvider"`
	ProviderUserID *string          `json:"-"`
	EmailVerified  bool             `json:"emailVerified"`
	// HourlyWage is used by purchase reflection; when unset the configured default applies.
	HourlyWage decimal.NullDecimal `json:"hourlyWage"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
