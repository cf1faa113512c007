// Package observability provides the logging, metrics, and tracing hooks
// used by statespace search drivers.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// SearchSummary carries the counters reported when a search finishes.
type SearchSummary struct {
	Expanded     int
	Generated    int
	PeakFrontier int
	DurationMs   float64
}

// EnrichLogger adds search context to a logger.
// Returns a new logger with run_id and strategy fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "astar")
//	enriched.Info("expanding") // includes run_id, strategy
func EnrichLogger(logger *slog.Logger, runID, strategy string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("strategy", strategy),
	)
}

// LogSearchStart logs the start of a search run.
func LogSearchStart(logger *slog.Logger, runID, strategy string) {
	if logger == nil {
		return
	}
	logger.Info("search starting",
		slog.String("run_id", runID),
		slog.String("strategy", strategy),
	)
}

// LogSearchComplete logs a search that reached a goal.
func LogSearchComplete(logger *slog.Logger, runID, strategy string, cost float64, depth int, sum SearchSummary) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.String("run_id", runID),
		slog.String("strategy", strategy),
		slog.Float64("cost", cost),
		slog.Int("depth", depth),
		slog.Int("expanded", sum.Expanded),
		slog.Int("generated", sum.Generated),
		slog.Int("peak_frontier", sum.PeakFrontier),
		slog.Float64("duration_ms", sum.DurationMs),
	)
}

// LogSearchFailed logs a search that ended without a solution.
// Failures that are ordinary outcomes (no solution, cutoff) are logged at
// info level; anything else is an error.
func LogSearchFailed(logger *slog.Logger, runID, strategy string, err error, expected bool, sum SearchSummary) {
	if logger == nil {
		return
	}
	level := slog.LevelError
	if expected {
		level = slog.LevelInfo
	}
	logger.Log(context.Background(), level, "search failed",
		slog.String("run_id", runID),
		slog.String("strategy", strategy),
		slog.String("error", err.Error()),
		slog.Int("expanded", sum.Expanded),
		slog.Int("generated", sum.Generated),
		slog.Float64("duration_ms", sum.DurationMs),
	)
}

// LogIteration logs one depth limit of an iterative-deepening run.
func LogIteration(logger *slog.Logger, limit int, outcome string) {
	if logger == nil {
		return
	}
	logger.Debug("depth-limited pass finished",
		slog.Int("limit", limit),
		slog.String("outcome", outcome),
	)
}

// LogCandidate logs an improved meeting point in bidirectional search.
func LogCandidate(logger *slog.Logger, cost float64, direction string) {
	if logger == nil {
		return
	}
	logger.Debug("bidirectional candidate improved",
		slog.Float64("cost", cost),
		slog.String("direction", direction),
	)
}

// LogSweep logs one value-iteration sweep.
func LogSweep(logger *slog.Logger, iteration int, delta float64) {
	if logger == nil {
		return
	}
	logger.Debug("value iteration sweep",
		slog.Int("iteration", iteration),
		slog.Float64("delta", delta),
	)
}

// LogConverged logs the end of value iteration.
func LogConverged(logger *slog.Logger, iterations int, delta, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("value iteration converged",
		slog.Int("iterations", iterations),
		slog.Float64("delta", delta),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... search ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
