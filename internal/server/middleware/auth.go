package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phatneglo/uac-server/internal/server/handlers"
	"github.com/phatneglo/uac-server/internal/server/jwt"
)

// AuthMiddleware validates the bearer token on protected routes and
// injects the token's subject into the request context.
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("invalid Authorization header format", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("token validation failed", "error", err, "path", r.URL.Path)
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeError(w, http.StatusUnauthorized, "token expired")
				} else {
					writeError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Subject)

			logger.Debug("user authenticated", "user_id", claims.UserID, "username", claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
