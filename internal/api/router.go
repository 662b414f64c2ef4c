package api

import (
	"net/http"

	"github.com/dom/superheroes-api/internal/api/handlers"
	"github.com/dom/superheroes-api/internal/api/middleware"
	"github.com/dom/superheroes-api/internal/config"
	"github.com/dom/superheroes-api/internal/metrics"
	"github.com/dom/superheroes-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires the HTTP surface. A nil collector disables metrics.
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger, m *metrics.Collector) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h1>Superheroes Code Challenge</h1>"))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	// Initialize handlers
	heroHandler := handlers.NewHeroHandler(services.Hero, m)
	powerHandler := handlers.NewPowerHandler(services.Power, m)
	heroPowerHandler := handlers.NewHeroPowerHandler(services.HeroPower, m)

	r.Route("/heroes", func(r chi.Router) {
		r.Get("/", heroHandler.List)
		r.Get("/{id:[0-9]+}", heroHandler.Get)
		r.Patch("/{id:[0-9]+}", heroHandler.Update)
	})

	r.Route("/powers", func(r chi.Router) {
		r.Get("/", powerHandler.List)
		r.Get("/{id:[0-9]+}", powerHandler.Get)
		r.Patch("/{id:[0-9]+}", powerHandler.Update)
	})

	r.Post("/hero_powers", heroPowerHandler.Create)

	return r
}
