package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/api/graphql"
	"github.com/dsc-protocol/dsc-indexer/internal/api/middleware"
	"github.com/dsc-protocol/dsc-indexer/internal/api/rest"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/executor"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/providers/temporal"
	"github.com/dsc-protocol/dsc-indexer/internal/ratelimit"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug                 bool
	Host                  string
	Port                  int
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	OrchestratorTaskQueue string
	Auth                  middleware.AuthConfig
	// CacheTTL of zero disables the response cache
	CacheTTL  time.Duration
	RateLimit ratelimit.Config
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	redis        adapter.RedisClient
	clock        adapter.Clock
	limiter      ratelimit.Limiter
	httpServer   *http.Server
}

// New creates a new API server. redis may be nil, which disables the response cache
// and keeps rate limiting in process
func New(cfg Config, store store.Store, orchestrator temporal.TemporalOrchestrator, redis adapter.RedisClient, clock adapter.Clock) *Server {
	return &Server{
		config:       cfg,
		store:        store,
		orchestrator: orchestrator,
		redis:        redis,
		clock:        clock,
	}
}

// Router builds the gin engine with every route and middleware
func (s *Server) Router() (*gin.Engine, error) {
	auth, err := middleware.NewAuthenticator(s.config.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	if s.limiter == nil {
		s.limiter, err = ratelimit.NewLimiter(s.config.RateLimit, s.redis, s.clock)
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())

	// Operational endpoints are not rate limited
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("")
	api.Use(middleware.RateLimit(s.limiter))

	var cache gin.HandlerFunc
	if s.redis != nil && s.config.CacheTTL > 0 {
		cache = middleware.Cache(s.redis, s.config.CacheTTL)
	}

	// Shared executor (business logic shared between REST and GraphQL)
	exec := executor.NewExecutor(s.store, s.orchestrator, s.config.OrchestratorTaskQueue)

	rest.SetupRoutes(api, rest.NewHandler(exec), auth, cache)

	graphqlHandler, err := graphql.NewHandler(exec, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL handler: %w", err)
	}
	gql := api.Group("")
	if cache != nil {
		gql.Use(cache)
	}
	graphql.SetupRoutes(gql, graphqlHandler)

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("cache", s.redis != nil && s.config.CacheTTL > 0),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Close(); err != nil {
			return fmt.Errorf("failed to close rate limiter: %w", err)
		}
	}

	return nil
}
