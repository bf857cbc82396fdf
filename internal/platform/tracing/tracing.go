// Package tracing builds the OpenTelemetry tracer provider for a run.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Shutdown flushes pending spans and releases the exporter.
type Shutdown func(context.Context) error

// New returns the tracer provider for serviceName. When enabled is false it
// returns the global provider, which is a no-op unless something installed
// one. When enabled, every finished span is written to w as JSON.
func New(w io.Writer, serviceName string, enabled bool) (trace.TracerProvider, Shutdown, error) {
	noop := func(context.Context) error { return nil }
	if !enabled {
		return otel.GetTracerProvider(), noop, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, noop, fmt.Errorf("create span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(semconv.ServiceName(serviceName))),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	return tp, tp.Shutdown, nil
}
