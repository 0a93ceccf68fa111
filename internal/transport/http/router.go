// Package httptransport exposes the lookup service over HTTP.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vehicleinfo/internal/platform/middleware"
	"vehicleinfo/pkg/platform/httputil"
	"vehicleinfo/pkg/platform/middleware/requesttime"
)

// NewRouter wires the lookup API, health and metrics endpoints. Lookup
// requests are cut off after requestTimeout.
func NewRouter(h *Handler, logger *slog.Logger, gatherer prometheus.Gatherer, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger(logger))
		r.Use(middleware.Timeout(requestTimeout))
		h.Register(r)
	})
	return r
}
