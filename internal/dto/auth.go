package dto

import "strings"

// SignupRequest registers a local user.
type SignupRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8,max=72"`
	Name        string  `json:"name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	FullName    *string `json:"full_name"`
}

// LoginRequest holds email/password credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload accepts credentials either flat or wrapped as {"body": {...}}.
type LoginPayload struct {
	LoginRequest
	Body *LoginRequest `json:"body"`
}

// Credentials returns the wrapped credentials when present, the flat ones otherwise.
func (p LoginPayload) Credentials() LoginRequest {
	creds := p.LoginRequest
	if p.Body != nil {
		creds = *p.Body
	}
	creds.Email = strings.TrimSpace(creds.Email)
	return creds
}

// ExchangeCodeRequest carries the authorization code obtained by the frontend from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse is returned by every successful sign-in.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

const TokenTypeBearer = "bearer"
