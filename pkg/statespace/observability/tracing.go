package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the statespace tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("statespace")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span for a whole search run.
	StartSearchSpan(ctx context.Context, strategy, runID string) (context.Context, trace.Span)

	// StartIterationSpan starts a child span for one depth limit of an
	// iterative-deepening run.
	StartIterationSpan(ctx context.Context, limit int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSearchSpan starts a span for the search run.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, strategy, runID string) (context.Context, trace.Span) {
	return StartSearchSpan(ctx, strategy, runID)
}

// StartIterationSpan starts a span for one deepening iteration.
func (m *otelSpanManager) StartIterationSpan(ctx context.Context, limit int) (context.Context, trace.Span) {
	return StartIterationSpan(ctx, limit)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// StartSearchSpan starts a span for a search run.
// Uses the global OTel tracer.
func StartSearchSpan(ctx context.Context, strategy, runID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "statespace.search",
		trace.WithAttributes(
			attribute.String("search.strategy", strategy),
			attribute.String("run.id", runID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartIterationSpan starts a span for one depth limit.
// Uses the global OTel tracer.
func StartIterationSpan(ctx context.Context, limit int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "statespace.iteration",
		trace.WithAttributes(
			attribute.Int("search.depth_limit", limit),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
