package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/go-token-service/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			routeName := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				routeName = route.GetName()
			}

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"route": routeName,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"route": routeName,
				"code":  strconv.Itoa(meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
