package storage

import (
	"context"
	"time"
)

// SessionStorage persists the authenticated session on the client
type SessionStorage interface {
	// SaveSession stores the session, replacing any existing one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound when none exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated reports whether an unexpired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// Session holds the access token obtained at login
type Session struct {
	Username    string `json:"username"`
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the access token lifetime has passed
func (s *Session) Expired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}
