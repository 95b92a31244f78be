// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"blogfolio/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePassword checks password length bounds. No strength policy is
// enforced; the cap exists because bcrypt only hashes the first 72 bytes.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > 72 {
		return fmt.Errorf("password must not exceed 72 characters")
	}
	return nil
}

// ValidateName checks a user display name.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmed) > 50 {
		return fmt.Errorf("name must not exceed 50 characters")
	}
	return nil
}

// ValidateCategory checks a post category against the fixed enumeration.
func ValidateCategory(category string) error {
	if !models.ValidCategory(category) {
		return fmt.Errorf("category must be one of: %s", strings.Join(models.Categories, ", "))
	}
	return nil
}
