// Package api - Thin HTTP layer over the comparison engine
// The API is ONLY responsible for: input decoding, engine orchestration, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"cloud-cost/internal/config"
	"cloud-cost/internal/metrics"
)

// RouterConfig holds configuration for the API router.
type RouterConfig struct {
	// Metrics records request metrics and serves them on MetricsPath.
	// Nil disables both.
	Metrics *metrics.Metrics

	// MetricsPath is where metrics are served, "/metrics" by default
	MetricsPath string

	// Timeout bounds each request
	Timeout time.Duration
}

// NewRouter creates a new API router.
func NewRouter(handler *Handler, logger *zap.Logger, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(NewMetricsMiddleware(cfg.Metrics))
	}
	if cfg.Timeout > 0 {
		r.Use(middleware.Timeout(cfg.Timeout))
	}

	r.Get("/health", handler.HealthCheck)
	r.Get("/version", handler.Version)
	r.Get("/providers", handler.ListProviders)
	r.Get("/templates", handler.ListTemplates)

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.Metrics.Handler())
	}

	r.Route("/compare", func(r chi.Router) {
		r.Post("/compute", handler.CompareCompute)
		r.Post("/storage", handler.CompareStorage)
		r.Post("/instances", handler.CompareInstances)
	})
	r.Post("/tco", handler.CalculateTCO)
	r.Post("/migration", handler.RecommendMigration)
	r.Post("/analyze", handler.Analyze)
	r.Post("/discount", handler.SustainedUseDiscount)

	return r
}

// Server is the API server
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wraps router in an http.Server configured from cfg
func NewServer(cfg config.ServerConfig, router http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           router,
			ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", zap.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(shutdownCtx)
}
