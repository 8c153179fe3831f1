package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/storage"
)

const userColumns = `user_id, username, email, password_hash, first_name, middle_name,
	last_name, mobile_number, user_level_id, is_active, created_at, last_login`

// CreateUser inserts a new user and fills in the assigned ID.
// The UNIQUE constraints on username and email are the authoritative
// uniqueness guard; violations are mapped to duplicate errors so racing
// registrations resolve to exactly one winner.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, middle_name,
			last_name, mobile_number, user_level_id, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		nullString(user.FirstName),
		nullString(user.MiddleName),
		nullString(user.LastName),
		nullString(user.MobileNumber),
		user.UserLevelID,
		user.IsActive,
		user.CreatedAt,
	)

	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByUsername retrieves a user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

// GetUserByEmail retrieves a user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves a user by ID
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`
	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// ListUsers returns all users ordered by ID
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := s.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateUserLevels replaces the user's CSV role list
func (s *Storage) UpdateUserLevels(ctx context.Context, id int64, levels string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET user_level_id = ? WHERE user_id = ?`, levels, id)
	if err != nil {
		return fmt.Errorf("failed to update user levels: %w", err)
	}

	return checkAffected(result)
}

// UpdateLastLogin records the last successful login time
func (s *Storage) UpdateLastLogin(ctx context.Context, id int64, lastLogin time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE user_id = ?`, lastLogin, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return checkAffected(result)
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var (
		firstName    sql.NullString
		middleName   sql.NullString
		lastName     sql.NullString
		mobileNumber sql.NullString
		lastLogin    sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&firstName,
		&middleName,
		&lastName,
		&mobileNumber,
		&user.UserLevelID,
		&user.IsActive,
		&user.CreatedAt,
		&lastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.FirstName = firstName.String
	user.MiddleName = middleName.String
	user.LastName = lastName.String
	user.MobileNumber = mobileNumber.String
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// duplicateError maps a UNIQUE constraint failure to the matching
// sentinel, or returns nil for unrelated errors
func duplicateError(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	if strings.Contains(msg, "users.username") {
		return storage.ErrDuplicateUsername
	}
	if strings.Contains(msg, "users.email") {
		return storage.ErrDuplicateEmail
	}
	return nil
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
