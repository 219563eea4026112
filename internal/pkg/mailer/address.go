package mailer

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var addressValidator = validator.New()

// ValidAddress reports whether email is a single well-formed address.
func ValidAddress(email string) bool {
	return addressValidator.Var(strings.TrimSpace(email), "required,email") == nil
}
