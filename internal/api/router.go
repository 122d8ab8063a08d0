package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/LandBOS/internal/estimator"
)

func NewRouter(svc *estimator.Service, rateLimitPerMinute int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimitPerMinute))

	estimates := NewEstimatesHandler(svc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(JSONContentMiddleware)

		r.Post("/estimates", estimates.Create)
		r.Post("/gradients", estimates.Gradient)
		r.Get("/defaults", estimates.Defaults)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
