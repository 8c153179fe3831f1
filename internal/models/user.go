package models

import "time"

// User represents a registered account
type User struct {
	ID           int64      `json:"user_id"`
	Username     string     `json:"username"`      // unique, case-sensitive
	Email        string     `json:"email"`         // unique, stored lowercase
	PasswordHash string     `json:"-"`             // bcrypt hash, never serialized
	FirstName    string     `json:"first_name,omitempty"`
	MiddleName   string     `json:"middle_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	MobileNumber string     `json:"mobile_number,omitempty"`
	UserLevelID  string     `json:"user_level_id"` // CSV of role ids, e.g. "1,3"
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"date_created"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// UserLevel represents an access level a user can hold
type UserLevel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
