package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern defines the allowed username format.
// Latin letters (a-z, A-Z), digits (0-9) and underscore (_) only.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

// emailPattern is a deliberately simple shape check: one @, a non-empty
// local part and a domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinUsernameLen is the minimum username length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length
	MaxUsernameLen = 50
	// MaxEmailLen is the maximum email length
	MaxEmailLen = 100
)

// ValidateUsername checks that username matches the account policy.
// Usernames are case-sensitive; no normalization is applied.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// NormalizeEmail lowercases and trims an email address.
// Emails are stored and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email looks like an email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}

	return nil
}

// ValidatePassword checks the minimum password length policy.
// minLen comes from configuration.
func ValidatePassword(password string, minLen int) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < minLen {
		return fmt.Errorf("password must be at least %d characters long", minLen)
	}

	return nil
}
