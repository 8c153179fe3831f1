// Package service implements the authentication and account flows on
// top of the storage and token layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phatneglo/uac-server/internal/auth"
	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/jwt"
	"github.com/phatneglo/uac-server/internal/server/storage"
	"github.com/phatneglo/uac-server/internal/validation"
)

// AuthService orchestrates registration, login and current-user lookups
type AuthService struct {
	logger         *slog.Logger
	users          storage.UserStorage
	levels         storage.LevelStorage
	tokens         *jwt.Service
	passwordMinLen int
}

// NewAuthService creates a new auth service
func NewAuthService(logger *slog.Logger, users storage.UserStorage, levels storage.LevelStorage, tokens *jwt.Service, passwordMinLen int) *AuthService {
	return &AuthService{
		logger:         logger,
		users:          users,
		levels:         levels,
		tokens:         tokens,
		passwordMinLen: passwordMinLen,
	}
}

// RegisterInput holds the fields of a registration request
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	FirstName    string
	MiddleName   string
	LastName     string
	MobileNumber string
}

// LoginResult holds the outcome of a successful login
type LoginResult struct {
	User        *models.User
	AccessToken string
	ExpiresIn   int64 // seconds
}

// Register validates input, hashes the password and persists a new user
// with the default role. The pre-checks against username and email give
// a friendly error early, but the store's uniqueness constraints remain
// the authoritative guard against races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, &ValidationError{Field: "username", Reason: err.Error()}
	}

	email := validation.NormalizeEmail(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, &ValidationError{Field: "email", Reason: err.Error()}
	}

	if err := validation.ValidatePassword(in.Password, s.passwordMinLen); err != nil {
		return nil, &ValidationError{Field: "password", Reason: err.Error()}
	}

	// Fast pre-checks for friendly errors
	if _, err := s.users.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		MiddleName:   strings.TrimSpace(in.MiddleName),
		LastName:     strings.TrimSpace(in.LastName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		UserLevelID:  models.RoleGeneral,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// The insert lost a race the pre-check could not see
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, storage.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	return user, nil
}

// Login authenticates by username or email and issues an access token.
// Unknown identifier and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := s.lookupByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "login failed: unknown identifier")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed: wrong password",
			slog.String("username", user.Username))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.WarnContext(ctx, "login failed: account disabled",
			slog.String("username", user.Username))
		return nil, ErrAccountDisabled
	}

	token, expiresIn, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// Best effort; a failed timestamp update must not fail the login
	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to update last login",
			slog.Int64("user_id", user.ID), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	return &LoginResult{User: user, AccessToken: token, ExpiresIn: expiresIn}, nil
}

// lookupByIdentifier resolves a login identifier as a username first,
// then as an email address
func (s *AuthService) lookupByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}
	return s.users.GetUserByEmail(ctx, validation.NormalizeEmail(identifier))
}

// CurrentUser resolves a verified token subject to a live account.
// A user that vanished or was deactivated after issuance fails with
// ErrInvalidCredentials even though the token itself was valid.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns all registered users
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListUserLevels returns all available access levels
func (s *AuthService) ListUserLevels(ctx context.Context) ([]*models.UserLevel, error) {
	levels, err := s.levels.ListUserLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user levels: %w", err)
	}
	return levels, nil
}

// AssignRoles replaces a user's role list with the given CSV of role ids
func (s *AuthService) AssignRoles(ctx context.Context, userID int64, roleIDs string) (*models.User, error) {
	roles := strings.Split(roleIDs, ",")
	cleaned := make([]string, 0, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if !models.ValidRole(role) {
			return nil, &ValidationError{
				Field:  "role_ids",
				Reason: fmt.Sprintf("invalid role id %q, valid roles are: 1, 2, 3", role),
			}
		}
		cleaned = append(cleaned, role)
	}

	if err := s.users.UpdateUserLevels(ctx, userID, strings.Join(cleaned, ",")); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to assign roles: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	s.logger.InfoContext(ctx, "roles assigned",
		slog.Int64("user_id", userID),
		slog.String("roles", user.UserLevelID))

	return user, nil
}
