package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/service"
	"github.com/phatneglo/uac-server/pkg/api"
)

// sendJSON writes a JSON response with the given status code
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendServiceError maps a domain error to its transport status code.
// This is the single place where service errors become HTTP responses.
func sendServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		sendError(logger, w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUsernameTaken):
		sendError(logger, w, "username already registered", http.StatusBadRequest)
	case errors.Is(err, service.ErrEmailTaken):
		sendError(logger, w, "email already registered", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountDisabled):
		// One message for every authentication failure so responses
		// cannot be used to probe for accounts
		w.Header().Set("WWW-Authenticate", "Bearer")
		sendError(logger, w, "incorrect username or password", http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound):
		sendError(logger, w, "user not found", http.StatusNotFound)
	default:
		logger.ErrorContext(r.Context(), "internal error", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// toUserResponse converts a user entity to its API shape.
// The password hash is deliberately absent from the response type.
func toUserResponse(u *models.User) api.UserResponse {
	return api.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		MiddleName:   u.MiddleName,
		LastName:     u.LastName,
		MobileNumber: u.MobileNumber,
		UserLevelID:  u.UserLevelID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}
