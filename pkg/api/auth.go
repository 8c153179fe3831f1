package api

import "time"

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name,omitempty"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

// LoginRequest represents a JSON login request.
// Username accepts either the username or the email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // access token lifetime in seconds
}

// UserResponse represents a user as returned by the API.
// The password hash is never part of this payload.
type UserResponse struct {
	ID           int64      `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name,omitempty"`
	MiddleName   string     `json:"middle_name,omitempty"`
	LastName     string     `json:"last_name,omitempty"`
	MobileNumber string     `json:"mobile_number,omitempty"`
	UserLevelID  string     `json:"user_level_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"date_created"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// UserLevelResponse represents a single access level
type UserLevelResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserLevelsResponse wraps the list of available access levels
type UserLevelsResponse struct {
	UserLevels []UserLevelResponse `json:"user_levels"`
}

// MyRolesResponse describes the roles of the authenticated user
type MyRolesResponse struct {
	UserID      int64           `json:"user_id"`
	Username    string          `json:"username"`
	UserLevelID string          `json:"user_level_id"`
	Roles       []string        `json:"roles"`
	RoleNames   []string        `json:"role_names"`
	Permissions map[string]bool `json:"permissions"`
}

// AssignRolesRequest represents a request to replace a user's roles
type AssignRolesRequest struct {
	RoleIDs string `json:"role_ids"` // CSV, e.g. "1,2"
}

// AssignRolesResponse confirms a role assignment
type AssignRolesResponse struct {
	Message    string `json:"message"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	NewRoles   string `json:"new_roles"`
	AssignedBy string `json:"assigned_by"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
