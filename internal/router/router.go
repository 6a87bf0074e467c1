package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/indyatra/travel-advisor/internal/api/advisor"
)

// Config contains the handlers the router wires up.
type Config struct {
	AdvisorHandler *advisor.Handler
}

// SetupRouter initializes the application router. Server-wide middleware
// (request ID, logging, recoverer) is applied before mounting this router
// in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	// The original web client posts to /chat directly; keep that path
	// alongside the versioned one.
	r.Post("/chat", cfg.AdvisorHandler.Chat)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", cfg.AdvisorHandler.Chat)
		r.Get("/topics", cfg.AdvisorHandler.Topics)
	})

	return r
}
