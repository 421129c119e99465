package http

import (
	"net/http"
	"strconv"
	"time"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/responsewriter"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/slo"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request count, latency and in-flight
// connections for every request. Paths are normalized so ID segments
// do not explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r)

		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.NormalizePath(r.URL.Path),
			strconv.Itoa(wrapped.StatusCode()),
			time.Since(start),
		)
		slo.RecordRequest(wrapped.StatusCode())
	})
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
