package domain

import (
	"errors"
	"strings"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 20
)

// passwordSpecials is the set of special characters accepted in passwords.
const passwordSpecials = "!@#$%^&*"

// ErrPasswordPolicy is returned when a password does not satisfy the account
// password policy.
var ErrPasswordPolicy = errors.New("password must be 8-20 characters and contain at least one uppercase letter, one lowercase letter, and one special character")

// ValidatePassword checks a plaintext password against the account password
// policy: 8-20 characters, at least one uppercase letter, one lowercase letter
// and one special character, drawn only from letters, digits and !@#$%^&*.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrPasswordPolicy
	}

	var hasUpper, hasLower, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			// digits are allowed but not required
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return ErrPasswordPolicy
		}
	}

	if !hasUpper || !hasLower || !hasSpecial {
		return ErrPasswordPolicy
	}
	return nil
}
