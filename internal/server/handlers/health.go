package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phatneglo/uac-server/pkg/api"
)

// ServiceName identifies this service in health and root payloads
const ServiceName = "uac-server"

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness endpoints
type HealthHandler struct {
	logger *slog.Logger
	store  Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, store Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		store:  store,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "health check failed", slog.Any("error", err))
		sendJSON(h.logger, w, api.HealthResponse{Status: "unhealthy", Service: ServiceName}, http.StatusServiceUnavailable)
		return
	}

	sendJSON(h.logger, w, api.HealthResponse{Status: "healthy", Service: ServiceName}, http.StatusOK)
}

// Root handles GET /{$}
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"message": "Welcome to " + ServiceName,
		"version": "1.0.0",
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
