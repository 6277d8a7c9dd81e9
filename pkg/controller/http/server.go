package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/reliefops/kestrel/pkg/usecase"
)

// Server represents the console HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	console *usecase.Console
	poller  *usecase.Poller
}

// NewServer creates a new HTTP server exposing the derived views and
// the intent handlers
func NewServer(ctx context.Context, addr string, console *usecase.Console, poller *usecase.Poller) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	h := newHandler(console, poller)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/views", h.handleViews)
		r.Get("/analytics", h.handleAnalytics)
		r.Post("/refresh", h.handleRefresh)

		r.Route("/state", func(r chi.Router) {
			r.Post("/select", h.handleSelect)
			r.Post("/reveal", h.handleReveal)
			r.Post("/view-mode", h.handleViewMode)
			r.Post("/types/toggle", h.handleToggleType)
			r.Post("/types/clear", h.handleClearTypes)
			r.Post("/recent/toggle", h.handleToggleRecent)
		})

		r.Route("/incidents/{incidentID}", func(r chi.Router) {
			r.Post("/dispatch", h.handleDispatch)
			r.Post("/resolve", h.handleResolve)
		})
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		console: console,
		poller:  poller,
	}

	return server, nil
}

// Router exposes the chi router, used by tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "kestrel",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
