package validation

import (
	"regexp"
	"strings"

	apperrors "sentence-analyzer/internal/common/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s is an email-shaped caller identity.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateIdentity rejects a missing or malformed caller identity.
func ValidateIdentity(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("identity", "email metadata is required")
	}
	if !IsValidEmail(email) {
		return apperrors.NewValidationError("identity", "invalid email format: "+email)
	}
	return nil
}

// ValidateSentence rejects empty input.
func ValidateSentence(sentence string) error {
	if strings.TrimSpace(sentence) == "" {
		return apperrors.NewValidationError("sentence", "sentence must not be empty")
	}
	return nil
}
