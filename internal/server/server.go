// Package server exposes the solver over HTTP.
//
// Routes:
//
//	GET  /healthz                 build information
//	GET  /v1/neighbors/{cell}     neighbor list of a cell (?width=&height=)
//	POST /v1/solve                solve a board (?trace=1 adds paths)
//
// Errors are returned as {"code": ..., "message": ...} with a status derived
// from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordgrid/pkg/solve"
)

const (
	// maxBodyBytes bounds the size of a solve request.
	maxBodyBytes = 1 << 20

	// shutdownTimeout bounds how long in-flight requests may finish after
	// the serve context is cancelled.
	shutdownTimeout = 5 * time.Second

	// MaxAcceptAllCells is the largest board the API enumerates with the
	// "all" dictionary. Larger boards have millions of paths.
	MaxAcceptAllCells = 9

	// DefaultMaxVisits bounds the paths one API search may visit when the
	// runner sets no bound of its own.
	DefaultMaxVisits = 2_000_000

	// solveTimeout bounds the time spent in one solve request.
	solveTimeout = 30 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner *solve.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server that solves with runner. A runner without a visit
// bound gets DefaultMaxVisits.
func New(runner *solve.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner.MaxVisits <= 0 {
		runner.MaxVisits = DefaultMaxVisits
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/neighbors/{cell}", s.handleNeighbors)
		r.Post("/solve", s.handleSolve)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound(r.URL.Path))
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
