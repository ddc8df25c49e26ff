// Package trace exports overlay transitions as OpenTelemetry spans.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"galion/internal/overlay"
)

const instrumentationName = "galion/shell"

// Tracer records one span per input event and attaches overlay transitions
// to it. A nil *Tracer is valid and records nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	current  oteltrace.Span
}

// NewOTLPTracer creates a tracer exporting to OTEL_EXPORTER_OTLP_ENDPOINT.
// Returns a noop tracer if the endpoint is not configured.
func NewOTLPTracer(ctx context.Context, serviceName string) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return NewNoopTracer(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	if serviceName == "" {
		serviceName = "galion"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return NewTracer(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewTracer wraps an SDK provider. Tests pass one backed by a span recorder.
func NewTracer(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// NewNoopTracer returns a tracer that drops everything.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// BeginEvent opens the span for one input event. Call the returned function
// when the event has been handled.
func (t *Tracer) BeginEvent(name string, attrs ...attribute.KeyValue) func() {
	if t == nil {
		return func() {}
	}
	_, span := t.tracer.Start(context.Background(), name, oteltrace.WithAttributes(attrs...))
	t.current = span
	return func() {
		span.End()
		// Span implementations need not be comparable.
		if t.current != nil && t.current.SpanContext().Equal(span.SpanContext()) {
			t.current = nil
		}
	}
}

// Transition implements overlay.Observer. Inside an event the transition is
// recorded as a span event; outside one it gets its own span.
func (t *Tracer) Transition(tr overlay.Transition) {
	if t == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("galion.overlay.name", string(tr.Overlay)),
		attribute.Bool("galion.overlay.visible", tr.Visible),
		attribute.String("galion.overlay.cause", string(tr.Cause)),
	}
	if t.current != nil {
		t.current.AddEvent("overlay.transition", oteltrace.WithAttributes(attrs...))
		return
	}
	_, span := t.tracer.Start(context.Background(), "overlay."+string(tr.Overlay), oteltrace.WithAttributes(attrs...))
	span.End()
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
