package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom tags used by request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("yyyymmdd", validateCalendarDate)
}

// validateCalendarDate accepts values whose first ten characters form a YYYY-MM-DD date.
func validateCalendarDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < len(domain.DateLayout) {
		return false
	}
	_, err := time.Parse(domain.DateLayout, s[:len(domain.DateLayout)])
	return err == nil
}
