/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/ranges/*      Range builders
  /api/holidays/*    Holiday calendar management

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Range routes
		r.Route("/ranges", func(r chi.Router) {
			r.Get("/span", h.DaySpan)
			r.Get("/period", h.PeriodRange)
			r.Get("/week", h.WeekRange)
			r.Get("/month", h.MonthRange)
			r.Get("/quarter", h.QuarterRange)
			r.Get("/year", h.YearRange)
			r.Get("/progress", h.PeriodProgress)
		})

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHoliday)
			r.Post("/defaults", h.AddDefaultHolidays)
			r.Delete("/{id}", h.DeleteHoliday)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Calendar Range Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Calendar Range Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/ranges/span?days=7">/api/ranges/span?days=7</a> - Day span from today</li>
<li><a href="/api/ranges/month">/api/ranges/month</a> - Current month</li>
<li><a href="/api/ranges/progress?freq=q">/api/ranges/progress?freq=q</a> - Quarter progress</li>
<li><a href="/api/holidays">/api/holidays</a> - Holiday calendar</li>
</ul>
</body>
</html>`))
	})

	return r
}
