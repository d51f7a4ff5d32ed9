package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/coachplan/internal/planner"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner *planner.Service
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(p *planner.Service, log *slog.Logger) *Server {
	s := &Server{
		planner: p,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Post("/api/v1/plan", s.handleGeneratePlan)
	s.router.Get("/api/v1/healthz", s.handleHealthz)
}

// SetFrontend mounts the embedded static page at the root.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
