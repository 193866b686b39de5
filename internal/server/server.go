// Package server exposes the scheduling engine over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/internal/config"
	"github.com/cpusched/schedsim/internal/store"
)

// Server is the schedsim REST API server.
type Server struct {
	router    chi.Router
	logger    *logrus.Entry
	config    config.ServerConfig
	startTime time.Time
	store     store.Store // optional; nil disables run history
}

// New creates a new Server with all routes registered.
// st may be nil, in which case runs are not recorded and /runs answers 404.
func New(cfg config.ServerConfig, st store.Store, logger *logrus.Entry) *Server {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.WithField("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		store:     st,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	if s.config.CORSOrigin != "" {
		r.Use(corsMiddleware(s.config.CORSOrigin))
	}

	r.Get("/healthz", s.handleHealth)

	r.Post("/simulate", s.handleSimulate)
	r.Post("/simulate/csv", s.handleSimulateCSV)

	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)
}
