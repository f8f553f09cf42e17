package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"cnpj-toolkit/internal/handler"
	pkglog "cnpj-toolkit/internal/log"
	"cnpj-toolkit/internal/metrics"
	"cnpj-toolkit/internal/middleware"
)

// Config holds server configuration.
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	httpServer *http.Server
	router     chi.Router

	service  handler.CNPJService
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// Option customizes a Server.
type Option func(*Server)

// WithService enables the /cnpj endpoints backed by svc.
func WithService(svc handler.CNPJService) Option {
	return func(s *Server) {
		s.service = svc
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records request latency on m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// New creates a new Server with the given configuration.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: pkglog.L(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(s.logger))

	var observe middleware.ObserveFunc
	if s.metrics != nil {
		observe = s.metrics.ObserveRequest
	}
	r.Use(middleware.Timing(observe))

	s.router = r
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)

	if s.gatherer != nil {
		s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	if s.service != nil {
		handler.New(s.service).Register(s.router)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(handler.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Handler returns the root HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. This method blocks until the server is stopped.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleFunc registers fn for method and pattern.
// This is useful for testing to add custom endpoints.
func (s *Server) HandleFunc(method, pattern string, fn http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, fn)
}

// Run starts the server and blocks until a shutdown signal is received.
// It handles SIGINT and SIGTERM for graceful shutdown.
// The provided context can also be used to trigger shutdown.
func (s *Server) Run(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case <-ctx.Done():
		s.logger.Info().Msg("context cancelled, shutting down")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
