// Package server wires handlers, middleware and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phatneglo/uac-server/internal/config"
	"github.com/phatneglo/uac-server/internal/models"
	"github.com/phatneglo/uac-server/internal/server/handlers"
	"github.com/phatneglo/uac-server/internal/server/jwt"
	"github.com/phatneglo/uac-server/internal/server/middleware"
	"github.com/phatneglo/uac-server/internal/server/service"
	"github.com/phatneglo/uac-server/internal/server/storage/sqlite"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// Login and register share one generous default limit per client IP
	rateLimit       = 100
	rateLimitWindow = time.Minute
)

// Server is the assembled UAC HTTP server
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

// New builds the full server from configuration and an opened store
func New(logger *slog.Logger, cfg config.Config, store *sqlite.Storage) (*Server, error) {
	tokens, err := jwt.NewService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL())
	if err != nil {
		return nil, fmt.Errorf("create token service: %w", err)
	}

	svc := service.NewAuthService(logger, store, store, tokens, cfg.PasswordMinLength)

	authHandler := handlers.NewAuthHandler(logger, svc)
	adminHandler := handlers.NewAdminHandler(logger, svc)
	healthHandler := handlers.NewHealthHandler(logger, store)

	requireAuth := middleware.AuthMiddleware(logger, tokens)
	requireAdmin := middleware.RequireRoles(logger, svc, models.RoleAdmin)
	requireManager := middleware.RequireRoles(logger, svc, models.RoleAdmin, models.RoleManager)
	requireAnyRole := middleware.RequireRoles(logger, svc, models.RoleAdmin, models.RoleManager, models.RoleGeneral)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/login/form", authHandler.LoginForm)
	mux.Handle("GET /api/v1/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	mux.Handle("GET /api/v1/admin/users",
		requireAuth(requireManager(http.HandlerFunc(adminHandler.ListUsers))))
	mux.Handle("GET /api/v1/admin/user-levels",
		requireAuth(requireAnyRole(http.HandlerFunc(adminHandler.UserLevels))))
	mux.Handle("GET /api/v1/admin/my-roles",
		requireAuth(requireAnyRole(http.HandlerFunc(adminHandler.MyRoles))))
	mux.Handle("POST /api/v1/admin/assign-role/{user_id}",
		requireAuth(requireAdmin(http.HandlerFunc(adminHandler.AssignRoles))))

	handler := chain(mux,
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingWithSkip(logger, []string{"/health"}),
		middleware.RateLimitMiddleware(rateLimit, rateLimitWindow, logger),
	)

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Run serves until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// chain applies middlewares so the first listed runs outermost
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
