// Package http provides the HTTP server, routing, and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/accounts/internal/auth/http"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/metrics"
	userHTTP "github.com/allisson/accounts/internal/user/http"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server.
// The database handle is used only by the readiness endpoint; pass nil in tests.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig holds the handlers and options needed to build the route table.
type RouterConfig struct {
	SessionHandler *authHTTP.SessionHandler
	UserHandler    *userHTTP.UserHandler
	SessionUseCase authUseCase.SessionUseCase

	// Login rate limiting (per-IP, unauthenticated endpoint)
	RateLimitLoginEnabled        bool
	RateLimitLoginRequestsPerSec float64
	RateLimitLoginBurst          int

	// CORS
	CORSEnabled      bool
	CORSAllowOrigins string

	// Metrics
	MetricsEnabled   bool
	MetricsNamespace string
	MetricsProvider  *metrics.Provider
}

// SetupRouter builds the gin router with all middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public endpoints
	v1.POST("/register", cfg.UserHandler.RegisterHandler)

	loginHandlers := []gin.HandlerFunc{}
	if cfg.RateLimitLoginEnabled {
		loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	loginHandlers = append(loginHandlers, cfg.SessionHandler.LoginHandler)
	v1.POST("/login", loginHandlers...)

	// Refresh authenticates with the refresh token cookie, not the access
	// token, so it stays outside the authenticated group.
	v1.POST("/refresh", cfg.SessionHandler.RefreshHandler)
	v1.POST("/logout", cfg.SessionHandler.LogoutHandler)

	// Authenticated endpoints
	authenticated := v1.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(cfg.SessionUseCase, s.logger))
	authenticated.GET("/users", cfg.UserHandler.GetProfileHandler)
	authenticated.PUT("/users", cfg.UserHandler.UpdateProfileHandler)
	authenticated.DELETE("/users/delete", cfg.UserHandler.DeleteHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic.
// The database must be reachable for the server to be ready.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
