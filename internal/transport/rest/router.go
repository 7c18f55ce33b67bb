package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterConfig holds everything mounted on the HTTP router. Nil optional
// fields are skipped.
type RouterConfig struct {
	Health       *HealthHandler
	Habits       *HabitHandler
	Gamification *GamificationHandler

	// Middleware runs for every route, outermost first.
	Middleware []func(http.Handler) http.Handler
	// APIMiddleware runs only for the /habits and /gamification routes.
	APIMiddleware []func(http.Handler) http.Handler

	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds the chi router for the service.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(cfg.Middleware...)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, KindNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, KindValidation, "method not allowed")
	})

	if cfg.Health != nil {
		r.Get("/live", cfg.Health.Live)
		r.Get("/ready", cfg.Health.Ready)
		r.Get("/health", cfg.Health.Health)
	}
	if cfg.MetricsHandler != nil && cfg.MetricsPath != "" {
		r.Method(http.MethodGet, cfg.MetricsPath, cfg.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(cfg.APIMiddleware...)

		if h := cfg.Habits; h != nil {
			r.Route("/habits", func(r chi.Router) {
				r.Get("/", h.List)
				r.Post("/", h.Create)
				r.Get("/summary", h.Summary)
				r.Put("/{id}", h.ReplaceHistory)
				r.Post("/{id}/toggle", h.Toggle)
			})
		}

		if h := cfg.Gamification; h != nil {
			r.Route("/gamification", func(r chi.Router) {
				r.Get("/points", h.Points)
				r.Get("/earnings", h.Earnings)
				r.Get("/leaderboard", h.Leaderboard)
				r.Put("/leaderboard/opt-in", h.SetOptIn)
				r.Get("/badges", h.Badges)
			})
		}
	})

	return r
}
