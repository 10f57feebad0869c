package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts a conventional address: local part of letters, digits
// and "+_.-", a domain with at least one dot and a TLD of two or more letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether email has a conventional address format.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NewValidator returns a validator with the "ledgeremail" tag registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name or nil func.
	_ = v.RegisterValidation("ledgeremail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}
