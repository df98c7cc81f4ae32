package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-budget/internal/core/port"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the run use case and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.RunUseCase
	logger   *slog.Logger
	observer RequestObserver
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. metrics is served
// on /metrics when not nil; observer may be nil.
func NewHandler(svc port.RunUseCase, logger *slog.Logger, observer RequestObserver, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger, observer: observer}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.observe)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/runs", h.handleStartRun)
		r.Get("/runs", h.handleRunHistory)
		r.Get("/runs/current", h.handleCurrentRun)
		r.Get("/accounts", h.handleAccounts)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// observe logs every request and reports it to the observer under its route
// pattern.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		if h.observer != nil {
			h.observer.ObserveHTTP(r.Method, route, status, elapsed)
		}
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", elapsed))
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
