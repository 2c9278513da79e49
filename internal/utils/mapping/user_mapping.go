package mapping

import (
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/SscSPs/ecobudget_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Email:          d.Email,
		Name:           d.Name,
		FullName:       d.FullName,
		PhoneNumber:    d.PhoneNumber,
		PasswordHash:   d.PasswordHash,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: d.ProviderUserID,
		EmailVerified:  d.EmailVerified,
		HourlyWage:     d.HourlyWage,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		Name:           m.Name,
		FullName:       m.FullName,
		PhoneNumber:    m.PhoneNumber,
		PasswordHash:   m.PasswordHash,
		AuthProvider:   domain.AuthProviderType(m.AuthProvider),
		ProviderUserID: m.ProviderUserID,
		EmailVerified:  m.EmailVerified,
		HourlyWage:     m.HourlyWage,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}
