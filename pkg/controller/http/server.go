package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/agentdesk/pkg/utils/errors"
	"github.com/m-mizutani/agentdesk/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultCORSOrigin is the origin of the development frontend
const DefaultCORSOrigin = "http://localhost:5173"

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	agentCtrl  *AgentController
	corsOrigin string
	readiness  Pinger
}

// Options is a functional option for Server
type Options func(*Server)

// WithAgentController sets the agent controller
func WithAgentController(ctrl *AgentController) Options {
	return func(s *Server) {
		s.agentCtrl = ctrl
	}
}

// WithCORSOrigin sets the origin allowed to call the API from a browser
func WithCORSOrigin(origin string) Options {
	return func(s *Server) {
		s.corsOrigin = origin
	}
}

// WithReadinessProbe sets the dependency checked by /health/ready
func WithReadinessProbe(p Pinger) Options {
	return func(s *Server) {
		s.readiness = p
	}
}

// New creates a new HTTP server
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:     r,
		corsOrigin: DefaultCORSOrigin,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply middleware
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	r.Use(corsMiddleware(s.corsOrigin))

	// Agent endpoints
	if s.agentCtrl != nil {
		r.Get("/agents", s.agentCtrl.HandleListAgents)
		r.Post("/agent", s.agentCtrl.HandleCreateAgent)
		r.Get("/agent/{agentId}", s.agentCtrl.HandleGetAgent)
		r.Put("/agent/{agentId}", s.agentCtrl.HandleUpdateAgent)
		r.Get("/vendor/agents", s.agentCtrl.HandleListVendorAgents)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if s.readiness != nil {
			if err := s.readiness.Ping(r.Context()); err != nil {
				errors.Handle(r.Context(), goerr.Wrap(err, "readiness check failed"))
				w.WriteHeader(http.StatusServiceUnavailable)
				safe.Write(r.Context(), w, []byte("Service Unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
