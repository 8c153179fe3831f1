package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phatneglo/uac-server/internal/auth"
	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/jwt"
	"github.com/phatneglo/uac-server/internal/server/storage"
)

// mockUserStorage is an in-memory UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> user
	nextID      int64
	createError error
	lookupError error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrDuplicateUsername
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.lookupError != nil {
		return nil, m.lookupError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.lookupError != nil {
		return nil, m.lookupError
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserStorage) UpdateUserLevels(ctx context.Context, id int64, levels string) error {
	for _, u := range m.users {
		if u.ID == id {
			u.UserLevelID = levels
			return nil
		}
	}
	return storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, id int64, lastLogin time.Time) error {
	for _, u := range m.users {
		if u.ID == id {
			u.LastLogin = &lastLogin
			return nil
		}
	}
	return storage.ErrUserNotFound
}

// mockLevelStorage serves a fixed level list
type mockLevelStorage struct {
	levels []*models.UserLevel
}

func (m *mockLevelStorage) ListUserLevels(ctx context.Context) ([]*models.UserLevel, error) {
	return m.levels, nil
}

func newTestService(t *testing.T, users *mockUserStorage) *AuthService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	tokens, err := jwt.NewService("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)

	levels := &mockLevelStorage{levels: []*models.UserLevel{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "manager"},
		{ID: 3, Name: "general user"},
	}}

	return NewAuthService(logger, users, levels, tokens, 8)
}

func registerInput() RegisterInput {
	return RegisterInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		Password:  "pw1234567",
		FirstName: "Alice",
	}
}

func TestRegister_Success(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.Equal(t, models.RoleGeneral, user.UserLevelID)
	assert.True(t, user.IsActive)
	assert.Positive(t, user.ID)

	// Stored hash must never equal the submitted plaintext
	assert.NotEqual(t, "pw1234567", user.PasswordHash)
	assert.True(t, auth.VerifyPassword("pw1234567", user.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t, newMockUserStorage())
	ctx := context.Background()

	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"bad username", RegisterInput{Username: "a!", Email: "a@x.com", Password: "pw1234567"}, "username"},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "pw1234567"}, "email"},
		{"short password", RegisterInput{Username: "alice", Email: "a@x.com", Password: "short"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = "other@example.com"
	_, err = svc.Register(ctx, in)
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Username = "alice2"
	_, err = svc.Register(ctx, in)
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestRegister_InsertRaceMapsDuplicate(t *testing.T) {
	// Pre-check passes but the insert itself reports a collision,
	// as happens when two registrations race.
	users := newMockUserStorage()
	users.createError = storage.ErrDuplicateUsername
	svc := newTestService(t, users)

	_, err := svc.Register(context.Background(), registerInput())
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	res, err := svc.Login(ctx, "alice", "pw1234567")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(900), res.ExpiresIn)
	assert.NotNil(t, res.User.LastLogin)

	// Email works as identifier too, case-insensitively
	res, err = svc.Login(ctx, "Alice@Example.com", "pw1234567")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
}

func TestLogin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "alice", "wrong-password")
	_, errUnknownUser := svc.Login(ctx, "nosuchuser", "anything")

	// Anti-enumeration: both failures are indistinguishable
	assert.True(t, errors.Is(errWrongPassword, ErrInvalidCredentials))
	assert.True(t, errors.Is(errUnknownUser, ErrInvalidCredentials))
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestLogin_DisabledAccount(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	user.IsActive = false

	_, err = svc.Login(ctx, "alice", "pw1234567")
	assert.True(t, errors.Is(err, ErrAccountDisabled))
}

func TestLogin_TokenSubjectResolvesBack(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	res, err := svc.Login(ctx, "alice", "pw1234567")
	require.NoError(t, err)

	tokens, err := jwt.NewService("test-secret", "HS256", 15*time.Minute)
	require.NoError(t, err)
	claims, err := tokens.Validate(res.AccessToken)
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestCurrentUser_MissingOrInactive(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx, "ghost")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	user, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	user.IsActive = false

	_, err = svc.CurrentUser(ctx, "alice")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAssignRoles(t *testing.T) {
	users := newMockUserStorage()
	svc := newTestService(t, users)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	updated, err := svc.AssignRoles(ctx, user.ID, "1, 2")
	require.NoError(t, err)
	assert.Equal(t, "1,2", updated.UserLevelID)
	assert.True(t, updated.HasRole(models.RoleAdmin))

	_, err = svc.AssignRoles(ctx, user.ID, "1,9")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.AssignRoles(ctx, 9999, "1")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestListUserLevels(t *testing.T) {
	svc := newTestService(t, newMockUserStorage())

	levels, err := svc.ListUserLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, "admin", levels[0].Name)
}
