package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordSearch does nothing.
func (NoopMetrics) RecordSearch(_ context.Context, _, _ string, _ time.Duration) {}

// RecordNodes does nothing.
func (NoopMetrics) RecordNodes(_ context.Context, _ string, _, _ int64) {}

// RecordFrontierPeak does nothing.
func (NoopMetrics) RecordFrontierPeak(_ context.Context, _ string, _ int64) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartSearchSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartSearchSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartIterationSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartIterationSpan(ctx context.Context, _ int) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
