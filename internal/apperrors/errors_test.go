package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid amount", ErrInvalidAmount, "InvalidAmount"},
		{"wrapped invalid amount", fmt.Errorf("add savings: %w", ErrInvalidAmount), "InvalidAmount"},
		{"invalid wage", ErrInvalidWage, "InvalidWage"},
		{"generic validation", ErrValidation, "ValidationError"},
		{"not found", ErrNotFound, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidationCode(tt.err))
		})
	}
}

func TestDomainValidationErrorsWrapErrValidation(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidAmount, ErrValidation))
	assert.True(t, errors.Is(ErrInvalidWage, ErrValidation))
	assert.False(t, errors.Is(ErrInvalidAmount, ErrInvalidWage))
}

func TestAppError(t *testing.T) {
	err := NewBadRequestError("bad input")
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "bad input")

	var appErr *AppError
	wrapped := fmt.Errorf("handler: %w", NewGatewayTimeoutError("google down"))
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusGatewayTimeout, appErr.Code)
	assert.True(t, errors.Is(wrapped, ErrUpstream))
}
