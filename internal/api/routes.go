package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nepcal/panchanga-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Everything under /api/v1 is public and read-only; the ICS export is
// behind the API key because generating a year's feed is the one
// expensive request the server has.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	base := ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		handlers.metrics.Middleware(routePattern),
		CORSMiddleware(),
	)
	r.Use(base)

	r.Get("/health", handlers.HealthCheck)
	r.Method(http.MethodGet, "/metrics", handlers.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", handlers.GetToday)
		r.Get("/panchanga/{date}", handlers.GetPanchanga)
		r.Get("/convert/to-bs/{date}", handlers.ConvertToBS)
		r.Get("/convert/to-ad/{date}", handlers.ConvertToAD)
		r.Get("/bs/{year}/{month}", handlers.GetMonth)
		r.Get("/events/{date}", handlers.GetEvents)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Get("/calendar.ics", handlers.GetCalendarICS)
		})
	})

	return r
}

// routePattern returns the chi route pattern for a request, falling
// back to the raw path before routing has happened.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
