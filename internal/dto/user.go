package dto

import (
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name        *string          `json:"name"`
	FullName    *string          `json:"full_name"`
	PhoneNumber *string          `json:"phone_number"`
	HourlyWage  *decimal.Decimal `json:"hourly_wage"`
}

type UserResponse struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	FullName     string           `json:"full_name,omitempty"`
	PhoneNumber  string           `json:"phone_number,omitempty"`
	AuthProvider string           `json:"auth_provider"`
	HourlyWage   *decimal.Decimal `json:"hourly_wage"`
	CreatedAt    time.Time        `json:"created_at"`
}

func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:           user.UserID,
		Email:        user.Email,
		Name:         user.Name,
		FullName:     user.FullName,
		PhoneNumber:  user.PhoneNumber,
		AuthProvider: string(user.AuthProvider),
		CreatedAt:    user.CreatedAt,
	}
	if user.HourlyWage.Valid {
		w := user.HourlyWage.Decimal.Round(2)
		resp.HourlyWage = &w
	}
	return resp
}
