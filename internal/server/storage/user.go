package storage

import (
	"context"
	"time"

	"github.com/phatneglo/uac-server/internal/models"
)

// UserStorage defines the interface for user persistence
type UserStorage interface {
	// CreateUser inserts a new user and fills in its assigned ID.
	// Returns ErrDuplicateUsername or ErrDuplicateEmail when the store's
	// uniqueness constraints reject the insert.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by (normalized) email.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// ListUsers returns all users ordered by ID
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUserLevels replaces the user's CSV role list.
	// Returns ErrUserNotFound if no such user exists.
	UpdateUserLevels(ctx context.Context, id int64, levels string) error

	// UpdateLastLogin records the last successful login time.
	// Returns ErrUserNotFound if no such user exists.
	UpdateLastLogin(ctx context.Context, id int64, lastLogin time.Time) error
}

// LevelStorage defines the interface for user level lookups
type LevelStorage interface {
	// ListUserLevels returns all access levels ordered by ID
	ListUserLevels(ctx context.Context) ([]*models.UserLevel, error)
}
