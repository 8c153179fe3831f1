package models

import "strings"

// Role ids as stored in users.user_level_id (CSV)
const (
	RoleAdmin   = "1"
	RoleManager = "2"
	RoleGeneral = "3"
)

// RoleName returns the human readable name for a role id,
// or the id itself when unknown.
func RoleName(role string) string {
	switch role {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleGeneral:
		return "general user"
	}
	return role
}

// ValidRole reports whether role is a known role id
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleGeneral
}

// Roles splits the user's CSV role list into individual role ids.
// Returns an empty slice when no roles are assigned.
func (u *User) Roles() []string {
	if u.UserLevelID == "" {
		return nil
	}
	parts := strings.Split(u.UserLevelID, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

// HasRole reports whether the user holds the given role id
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles() {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user holds at least one of the given role ids
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}
