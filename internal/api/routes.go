package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/holidaykit/holiday-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                            liveness + database check
//	GET  /api/v1/regions                    jurisdiction catalog
//	GET  /api/v1/holidays/{code}/{year}     resolved holidays, ?locale=
//	POST /api/v1/admin/names                upsert a translation (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLoggerContext())
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(CORSMiddleware())

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/regions", handlers.ListRegions)
		r.Get("/holidays/{code}/{year}", handlers.GetHolidays)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/names", handlers.UpsertTranslation)
		})
	})

	return r
}
