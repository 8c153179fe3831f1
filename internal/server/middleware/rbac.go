package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phatneglo/uac-server/internal/server/handlers"
	"github.com/phatneglo/uac-server/internal/server/service"
)

// RequireRoles allows the request through only when the authenticated
// user holds at least one of the given role ids. Must run after
// AuthMiddleware; the user is re-read from the store so stale tokens
// for deleted or deactivated accounts are rejected here as well.
func RequireRoles(logger *slog.Logger, svc *service.AuthService, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := handlers.GetUsername(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			user, err := svc.CurrentUser(r.Context(), username)
			if err != nil {
				logger.Warn("role check failed to resolve user", "username", username, "error", err)
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if len(user.Roles()) == 0 {
				writeError(w, http.StatusForbidden, "user has no assigned role")
				return
			}

			if !user.HasAnyRole(roles...) {
				logger.Warn("insufficient permissions",
					"username", username,
					"user_roles", user.UserLevelID)
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
