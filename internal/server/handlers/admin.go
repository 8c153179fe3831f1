package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/service"
	"github.com/phatneglo/uac-server/pkg/api"
)

// AdminHandler serves the role management endpoints
type AdminHandler struct {
	logger *slog.Logger
	svc    *service.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(logger *slog.Logger, svc *service.AuthService) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		svc:    svc,
	}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// UserLevels handles GET /api/v1/admin/user-levels
func (h *AdminHandler) UserLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.ListUserLevels(r.Context())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	resp := api.UserLevelsResponse{
		UserLevels: make([]api.UserLevelResponse, 0, len(levels)),
	}
	for _, l := range levels {
		resp.UserLevels = append(resp.UserLevels, api.UserLevelResponse{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// MyRoles handles GET /api/v1/admin/my-roles
func (h *AdminHandler) MyRoles(w http.ResponseWriter, r *http.Request) {
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

	roles := user.Roles()
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, models.RoleName(role))
	}

	resp := api.MyRolesResponse{
		UserID:      user.ID,
		Username:    user.Username,
		UserLevelID: user.UserLevelID,
		Roles:       roles,
		RoleNames:   roleNames,
		Permissions: map[string]bool{
			"is_admin":        user.HasRole(models.RoleAdmin),
			"is_manager":      user.HasRole(models.RoleManager),
			"is_general_user": user.HasRole(models.RoleGeneral),
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// AssignRoles handles POST /api/v1/admin/assign-role/{user_id}
func (h *AdminHandler) AssignRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("user_id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req api.AssignRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.svc.AssignRoles(ctx, userID, req.RoleIDs)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	assignedBy, _ := GetUsername(ctx)

	resp := api.AssignRolesResponse{
		Message:    "roles assigned successfully",
		UserID:     user.ID,
		Username:   user.Username,
		NewRoles:   user.UserLevelID,
		AssignedBy: assignedBy,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
