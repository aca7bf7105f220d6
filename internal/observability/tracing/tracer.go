// Package tracing instruments HTTP handling with OpenTelemetry spans.
package tracing

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("newsdesk")
