// Package api provides the HTTP API server and handlers for the
// WriterMorphosis application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/writermorphosis/writermorphosis-server/internal/http/response"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       *store.Store
	services    *Services
	router      *chi.Mux
	api         huma.API
	logger      *slog.Logger
	rateLimiter *RateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, logger *slog.Logger) *Server {
	s := &Server{
		store:       st,
		services:    services,
		router:      chi.NewRouter(),
		logger:      logger,
		rateLimiter: NewRateLimiter(60, time.Minute, 20),
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("WriterMorphosis API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)

	RegisterErrorHandler()
	s.registerRoutes()

	// Health check stays on plain chi; it must answer even if the API
	// layer is misbehaving.
	s.router.Get("/health", s.handleHealthCheck)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(RateLimitMiddleware(s.rateLimiter, s.logger))
	s.router.Use(sessionMiddleware(s.services.Account))
}

// registerRoutes registers every huma operation.
func (s *Server) registerRoutes() {
	s.registerFeedRoutes()
	s.registerSearchRoutes()
	s.registerHistoryRoutes()
	s.registerQuizRoutes()
	s.registerAuthRoutes()
	s.registerViewRoutes()
	s.registerMeRoutes()
}

// Stop releases server-owned resources.
func (s *Server) Stop() {
	s.rateLimiter.Stop()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	catalog := s.services.Content.Catalog()

	status := "healthy"
	if len(catalog.Warnings()) > 0 {
		status = "degraded"
	}

	response.Success(w, map[string]any{
		"status":   status,
		"posts":    len(catalog.Posts()),
		"warnings": len(catalog.Warnings()),
	}, s.logger)
}
