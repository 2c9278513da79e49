package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates an external collaborator (e.g. the LLM API) failed or returned garbage.
var ErrUpstream = errors.New("upstream failure")

// Domain validation failures. Both wrap ErrValidation so handlers can map them generically.
var (
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidWage   = fmt.Errorf("%w: hourly wage must be positive", ErrValidation)
)

// ValidationCode returns the machine readable code for a validation error,
// or an empty string if err is not one of the known domain validation errors.
func ValidationCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "InvalidAmount"
	case errors.Is(err, ErrInvalidWage):
		return "InvalidWage"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	}
	return ""
}

// AppError carries an HTTP status code and a client-safe message.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, ErrUpstream)
}
