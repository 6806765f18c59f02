// Package http provides the API server, its router and the metrics server.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/dernekportal/tcguard/internal/auth/http"
	authUseCase "github.com/dernekportal/tcguard/internal/auth/usecase"
	"github.com/dernekportal/tcguard/internal/config"
	"github.com/dernekportal/tcguard/internal/metrics"
	nationalidHTTP "github.com/dernekportal/tcguard/internal/nationalid/http"
	nationalidUseCase "github.com/dernekportal/tcguard/internal/nationalid/usecase"
)

// Server is the API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Handlers groups everything SetupRouter mounts.
type Handlers struct {
	TokenUseCase       authUseCase.TokenUseCase
	AccessGuard        nationalidUseCase.AccessGuard
	TokenHandler       *authHTTP.TokenHandler
	BeneficiaryHandler *nationalidHTTP.BeneficiaryHandler
	DependentHandler   *nationalidHTTP.DependentHandler
	AuditLogHandler    *nationalidHTTP.AuditLogHandler
	LegacyHandler      *nationalidHTTP.LegacyHandler
}

// NewServer creates a Server. db is pinged by the readiness endpoint.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// newHTTPServer applies the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// SetupRouter builds the router. ctx bounds the rate limiter cleanup
// goroutines. metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	h Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(RequestContextMiddleware())
	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	token := []gin.HandlerFunc{}
	if cfg.RateLimitTokenEnabled {
		token = append(token, authHTTP.TokenRateLimitMiddleware(
			ctx, cfg.RateLimitTokenRequestsPerSec, cfg.RateLimitTokenBurst, s.logger))
	}
	token = append(token, h.TokenHandler.IssueTokenHandler)
	v1.POST("/token", token...)

	authenticated := v1.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(h.TokenUseCase, s.logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	beneficiaries := authenticated.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.BeneficiaryHandler.CreateHandler)
		beneficiaries.GET("", h.BeneficiaryHandler.ListHandler)
		beneficiaries.POST("/search-by-tc", h.BeneficiaryHandler.SearchByIdentifierHandler)
		beneficiaries.GET("/:id", h.BeneficiaryHandler.GetHandler)
		beneficiaries.PATCH("/:id", h.BeneficiaryHandler.UpdateHandler)
		beneficiaries.DELETE("/:id", h.BeneficiaryHandler.DeleteHandler)
		beneficiaries.POST("/:id/dependents", h.DependentHandler.CreateHandler)
		beneficiaries.GET("/:id/dependents", h.DependentHandler.ListHandler)
	}

	dependents := authenticated.Group("/dependents")
	{
		dependents.POST("/search-by-tc", h.DependentHandler.SearchByIdentifierHandler)
		dependents.PATCH("/:id", h.DependentHandler.UpdateHandler)
		dependents.DELETE("/:id", h.DependentHandler.DeleteHandler)
	}

	guarded := authenticated.Group("")
	guarded.Use(nationalidHTTP.IdentifierAccessMiddleware(h.AccessGuard, s.logger))
	{
		guarded.GET("/audit-logs", h.AuditLogHandler.ListHandler)
		guarded.GET("/legacy-tc/status", h.LegacyHandler.StatusHandler)
	}

	s.router = router
}

// GetHandler returns the router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
