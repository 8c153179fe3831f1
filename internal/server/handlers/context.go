package handlers

import "context"

type contextKey string

// Context keys for values injected by the auth middleware
const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// GetUserID extracts the authenticated user's id from the context
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

// GetUsername extracts the authenticated username from the context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
