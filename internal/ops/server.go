package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/property-browser/internal/web/health"
	"github.com/tair/property-browser/pkg/logger"

	// registers the generated OpenAPI document
	_ "github.com/tair/property-browser/docs"
)

// NewRouter exposes metrics, API docs and readiness for operators
func NewRouter(gatherer prometheus.Gatherer, checker *health.Checker) *mux.Router {
	router := mux.NewRouter()

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		report := checker.CheckAll(ctx)

		status := http.StatusOK
		if report.Status == health.StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to encode readiness report")
		}
	}).Methods(http.MethodGet)

	return router
}

// NewServer wraps the router with CORS for dashboards and server spans
func NewServer(addr string, gatherer prometheus.Gatherer, checker *health.Checker) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	return &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(c.Handler(NewRouter(gatherer, checker)), "ops"),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
