package http

import (
	"net/http"

	"log-viewer/internal/aggregators"
	"log-viewer/internal/models"
	"log-viewer/internal/scanners"
	"log-viewer/internal/shared/loggers"
	"log-viewer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(scanner scanners.Scanner, aggregator aggregators.StatisticsAggregator, tailSubscriptions TailSubscriptions, queryOptions QueryOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	accessLogHandler := NewLogQueryHandler(models.StreamAccess, scanner, queryOptions)
	errorLogHandler := NewLogQueryHandler(models.StreamError, scanner, queryOptions)
	statsHandler := NewStatsHandler(aggregator)
	tailHandler := NewTailHandler(tailSubscriptions)

	// Routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/access-logs", errorHandlingAdapter(accessLogHandler))
		r.Get("/error-logs", errorHandlingAdapter(errorLogHandler))
		r.Get("/stats", errorHandlingAdapter(statsHandler))
		r.Get("/tail", errorHandlingAdapter(tailHandler))
	})
	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
