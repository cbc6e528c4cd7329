package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(backend *BackendService, chat *ChatService) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Cache preflight response for 5 minutes
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Longer than the completion timeout so a slow upstream still gets its own error.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", RestHandler(backend.Root))
	r.Route("/api", func(r chi.Router) {
		backend.AddRoutes(r)
		chat.AddRoutes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJsonResponse(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	})

	return r
}
