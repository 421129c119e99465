// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of in-flight HTTP requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Business metrics track newsroom operations
var (
	// ArticlesTotal tracks the total number of stored articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in storage",
		},
	)

	// ArticlesCreated counts articles created through the API
	ArticlesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// ArticlesPublished counts transitions of articles to published
	ArticlesPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of article publications",
		},
	)

	// BreakingNewsLookups counts reads of the breaking-news ticker
	BreakingNewsLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "breaking_news_lookups_total",
			Help: "Total number of breaking news lookups",
		},
	)

	// AuthTokenRequests counts token requests by outcome
	AuthTokenRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_requests_total",
			Help: "Total number of token requests",
		},
		[]string{"result"}, // result: success, failure
	)
)

// Database metrics track storage performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
