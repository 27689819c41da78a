// Package api exposes the use cases over HTTP. It owns request parsing,
// routing and the 1:1 mapping from domain failure categories to HTTP
// statuses; no business logic lives here.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"message-board/application"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	log      *slog.Logger
	handlers application.Handlers
}

func NewServer(log *slog.Logger, handlers application.Handlers) *Server {
	return &Server{log: log, handlers: handlers}
}

// Router builds the full route table. Wildcard origins are only meant
// for local development; production sets ALLOWED_ORIGINS explicitly.
func (s *Server) Router(allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/{id}", s.handleGetUser)
		r.Put("/{id}", s.handleUpdateUser)
		r.Delete("/{id}", s.handleRemoveUser)
		r.Get("/{id}/messages", s.handleGetAllMessages)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", s.handleCreateMessage)
		r.Delete("/{id}", s.handleRemoveMessage)
	})

	return r
}

// requestLogger records method, path, status and duration for every
// request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.log.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
