// Package api serves the site operations over HTTP with chi.
//
// Routes mirror the CLI: the navigation tree, page read/write/delete by nav
// identifier, collision checks, creation, build and download of the built
// site. Every response body is JSON except the zip download.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jpl-au/docsite/internal/service"
)

// Options configures a Server.
type Options struct {
	APIKey  string // when set, /api routes require "Authorization: Bearer <key>"
	MaxBody int64  // request body limit in bytes; 0 means no limit
}

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	svc      service.Service
	log      *slog.Logger
	opts     Options
	validate *validator.Validate
}

// NewServer creates and configures the HTTP server.
func NewServer(svc service.Service, log *slog.Logger, opts Options) *Server {
	s := &Server{
		svc:      svc,
		log:      log,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
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

	r.Route("/api", func(r chi.Router) {
		if s.opts.APIKey != "" {
			r.Use(AuthMiddleware(s.opts.APIKey))
		}
		if s.opts.MaxBody > 0 {
			r.Use(middleware.RequestSize(s.opts.MaxBody))
		}

		r.Get("/tree", s.handleTree)

		r.Get("/pages/{url}", s.handleGetPage)
		r.Put("/pages/{url}", s.handlePutPage)
		r.Delete("/pages/{url}", s.handleDeletePage)

		r.Post("/validate", s.handleValidate)
		r.Post("/nodes", s.handleCreate)

		r.Post("/build", s.handleBuild)
		r.Get("/download", s.handleDownload)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "root": s.svc.Root()})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // builds can be slow
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting docsite http api", "addr", addr, "root", s.svc.Root())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
