// Package observability provides production-grade observability infrastructure
// including structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
//   - slo: rolling availability and error-rate tracking
//
// Example usage:
//
//	import (
//	    "newsdesk/internal/observability/logging"
//	    "newsdesk/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordHTTPRequest("GET", "/articles", "200", 0.012)
//	}
package observability
