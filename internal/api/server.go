// Package api serves the render pipeline over HTTP.
//
// Routes:
//
//	GET  /health                     liveness probe
//	POST /api/render?format=excel    YAML body in, artifact out
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/testspec/pkg/pipeline"
)

// DefaultMaxBodyBytes caps the size of a YAML request body.
const DefaultMaxBodyBytes = 4 << 20

// Server is the HTTP render service.
type Server struct {
	router   chi.Router
	runner   *pipeline.Runner
	defaults pipeline.Options
	log      *log.Logger
	maxBody  int64
}

// NewServer creates the server. defaults seeds the options of every request;
// the request's format query parameter overrides defaults.Format.
func NewServer(runner *pipeline.Runner, defaults pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		defaults: defaults,
		log:      logger,
		maxBody:  DefaultMaxBodyBytes,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/render", s.handleRender)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
