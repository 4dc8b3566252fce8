// Package preview serves rendered theme headers over HTTP, so the theme can
// be checked in a browser without a host CMS.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"impractical.co/adaptable"
)

// DefaultAllowedOrigins lets pages served from a local dev server fetch
// previews.
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// Server renders headers for a single Theme.
type Server struct {
	theme          *adaptable.Theme
	logger         *slog.Logger
	allowedOrigins []string
	router         chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins replaces DefaultAllowedOrigins as the origins allowed to
// make cross-origin requests. Origins may contain one "*" wildcard.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// New returns a Server for theme, logging to logger.
func New(theme *adaptable.Theme, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		theme:          theme,
		logger:         logger,
		allowedOrigins: DefaultAllowedOrigins,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/header", s.handleHeader)
	return r
}

// withLogger puts a request-scoped logger in the context, where the
// renderer picks it up.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(adaptable.LoggingContext(r.Context(), log)))
		log.DebugContext(r.Context(), "request served", "status", ww.Status(), "duration", time.Since(start))
	})
}

// Handler returns the http.Handler serving the preview routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	params, err := ParseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if params.UserAgent == "" {
		params.UserAgent = r.UserAgent()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.theme.RenderHeader(r.Context(), w, params.Request())
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving preview on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down preview server: %w", err)
		}
		return nil
	}
}
