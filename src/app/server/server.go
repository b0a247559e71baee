// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bandquiz/src/app/gql"
	"bandquiz/src/app/http/handler"
	"bandquiz/src/app/http/response"
	"bandquiz/src/app/middleware"
	"bandquiz/src/core/ports"
	"bandquiz/src/core/usecase"
	"bandquiz/src/infra/config"
	"bandquiz/src/infra/dataloader"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	store  ports.Store
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler  *handler.HealthHandler
	graphqlHandler *handler.GraphQLHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, store ports.Store) (*Server, error) {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	validate := usecase.NewValidator()
	healthService := usecase.NewHealthService(log, map[string]ports.ExternalService{
		"database": store,
	})
	services := gql.Services{
		Users:     usecase.NewUserService(store, usecase.NewBcryptHasher(cfg.Auth.BcryptCost), validate, log),
		Posts:     usecase.NewPostService(store, validate, log),
		Answers:   usecase.NewAnswerService(store, validate, log),
		Questions: usecase.NewQuestionService(store, validate, log),
		Bands:     usecase.NewBandService(store, validate, log),
	}

	schema, err := gql.NewSchema(services)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	s := &Server{
		cfg:            cfg,
		log:            log,
		store:          store,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		graphqlHandler: handler.NewGraphQLHandler(schema, log),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// Every GraphQL request gets its own loaders.
	scope := middleware.RequestScope(s.log, s.attachLoaders)
	s.router.POST("/graphql", scope, s.graphqlHandler.Post)
	s.router.GET("/graphql", scope, s.graphqlHandler.Get)

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

func (s *Server) attachLoaders(ctx context.Context, log *slog.Logger) context.Context {
	cfg := dataloader.Config{
		MaxBatch:   s.cfg.Loader.MaxBatch,
		YieldCount: s.cfg.Loader.YieldCount,
		Wait:       s.cfg.Loader.Wait,
	}
	return gql.WithLoaders(ctx, gql.NewLoaders(s.store, cfg, log))
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
