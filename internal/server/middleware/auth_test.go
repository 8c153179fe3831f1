package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phatneglo/uac-server/internal/server/handlers"
	"github.com/phatneglo/uac-server/internal/server/jwt"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTokenService(t *testing.T, ttl time.Duration) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService("test-secret-key", "HS256", ttl)
	require.NoError(t, err)
	return svc
}

// contextCheckHandler asserts the identity injected by the middleware
func contextCheckHandler(t *testing.T, expectedUserID int64, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	tokens := newTokenService(t, 15*time.Minute)

	token, _, err := tokens.Issue(123, "testuser")
	require.NoError(t, err)

	wrapped := AuthMiddleware(setupTestLogger(), tokens)(contextCheckHandler(t, 123, "testuser"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := newTokenService(t, 15*time.Minute)
	wrapped := AuthMiddleware(setupTestLogger(), tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	tokens := newTokenService(t, 15*time.Minute)
	wrapped := AuthMiddleware(setupTestLogger(), tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"Basic abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", header)

		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	tokens := newTokenService(t, 15*time.Minute)
	wrapped := AuthMiddleware(setupTestLogger(), tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expiredTokens := newTokenService(t, 0)
	token, _, err := expiredTokens.Issue(1, "testuser")
	require.NoError(t, err)

	verifier := newTokenService(t, 15*time.Minute)
	wrapped := AuthMiddleware(setupTestLogger(), verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}
