// Package tracing integrates OpenTelemetry: a named tracer for manual
// spans and HTTP middleware that opens a server span per request.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("newsdesk")

// GetTracer returns the service tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
