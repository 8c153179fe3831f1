package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phatneglo/uac-server/internal/server/service"
	"github.com/phatneglo/uac-server/pkg/api"
)

// AuthHandler serves the authentication endpoints
type AuthHandler struct {
	logger *slog.Logger
	svc    *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, svc *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		svc:    svc,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(ctx, service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toUserResponse(user), http.StatusCreated)
}

// Login handles POST /api/v1/auth/login.
// The username field accepts either the username or the email address.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.login(w, r, req.Username, req.Password)
}

// LoginForm handles POST /api/v1/auth/login/form.
// Accepts OAuth2 password-grant form fields and funnels into the same
// login flow as the JSON endpoint; only the request encoding differs.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "failed to parse login form", slog.Any("error", err))
		sendError(h.logger, w, "invalid form body", http.StatusBadRequest)
		return
	}

	if grantType := r.PostFormValue("grant_type"); grantType != "" && grantType != "password" {
		sendError(h.logger, w, "unsupported grant_type", http.StatusBadRequest)
		return
	}

	h.login(w, r, r.PostFormValue("username"), r.PostFormValue("password"))
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, identifier, password string) {
	if identifier == "" || password == "" {
		sendError(h.logger, w, "username and password are required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Login(r.Context(), identifier, password)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   res.ExpiresIn,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Me handles GET /api/v1/auth/me.
// The auth middleware has already validated the bearer token; this
// re-checks that the subject still maps to a live account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := GetUsername(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.svc.CurrentUser(ctx, username)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toUserResponse(user), http.StatusOK)
}
