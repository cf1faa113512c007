package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records a finished search run with its outcome and duration.
	RecordSearch(ctx context.Context, strategy, outcome string, duration time.Duration)

	// RecordNodes records how many nodes a run expanded and generated.
	RecordNodes(ctx context.Context, strategy string, expanded, generated int64)

	// RecordFrontierPeak records the largest frontier size seen during a run.
	RecordFrontierPeak(ctx context.Context, strategy string, size int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	searchRuns    metric.Int64Counter
	searchLatency metric.Float64Histogram
	expanded      metric.Int64Counter
	generated     metric.Int64Counter
	frontierPeak  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("statespace")

	searchRuns, err := meter.Int64Counter("statespace.search.runs",
		metric.WithDescription("Number of search runs"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("statespace.search.latency_ms",
		metric.WithDescription("Search run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	expanded, err := meter.Int64Counter("statespace.nodes.expanded",
		metric.WithDescription("Number of nodes expanded"),
	)
	if err != nil {
		return nil, err
	}

	generated, err := meter.Int64Counter("statespace.nodes.generated",
		metric.WithDescription("Number of successor nodes generated"),
	)
	if err != nil {
		return nil, err
	}

	frontierPeak, err := meter.Int64Histogram("statespace.frontier.peak",
		metric.WithDescription("Largest frontier size reached during a run"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searchRuns:    searchRuns,
		searchLatency: searchLatency,
		expanded:      expanded,
		generated:     generated,
		frontierPeak:  frontierPeak,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSearch records a search run.
func (m *otelMetrics) RecordSearch(ctx context.Context, strategy, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	)
	m.searchRuns.Add(ctx, 1, attrs)
	m.searchLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordNodes records node counters.
func (m *otelMetrics) RecordNodes(ctx context.Context, strategy string, expanded, generated int64) {
	attrs := metric.WithAttributes(attribute.String("strategy", strategy))
	m.expanded.Add(ctx, expanded, attrs)
	m.generated.Add(ctx, generated, attrs)
}

// RecordFrontierPeak records the peak frontier size.
func (m *otelMetrics) RecordFrontierPeak(ctx context.Context, strategy string, size int64) {
	m.frontierPeak.Record(ctx, size, metric.WithAttributes(attribute.String("strategy", strategy)))
}
