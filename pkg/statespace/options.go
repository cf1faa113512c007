package statespace

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/statespace/pkg/statespace/observability"
)

// DefaultMaxRecursion bounds the recursion depth of RecursiveBestFirstSearch.
const DefaultMaxRecursion = 100000

// runConfig holds configuration for one search invocation.
type runConfig struct {
	maxExpansions    int
	timeout          time.Duration
	maxRecursion     int
	runID            string
	strictValidation bool
	stats            *Stats

	// Observability
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
}

// defaultRunConfig returns the default search configuration.
func defaultRunConfig() runConfig {
	return runConfig{
		maxRecursion: DefaultMaxRecursion,
		metrics:      observability.NoopMetrics{},
		spans:        observability.NoopSpanManager{},
	}
}

// RunOption configures search behavior.
type RunOption func(*runConfig)

// WithMaxExpansions stops the search with ErrExhausted once n nodes have
// been expanded. Zero (the default) means unlimited.
//
// Example:
//
//	node, err := statespace.AStarSearch(ctx, p, h, statespace.WithMaxExpansions(10000))
func WithMaxExpansions(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxExpansions = n
		}
	}
}

// WithTimeout stops the search with ErrExhausted once d has elapsed.
// The deadline is checked each time a node is taken from the frontier.
func WithTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRecursion bounds the recursion depth of recursive best-first search.
// Default: DefaultMaxRecursion
func WithMaxRecursion(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxRecursion = n
		}
	}
}

// WithRunID sets the identifier attached to logs and spans.
// A random UUID is generated when unset.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithStrictValidation makes expansion call Result twice per action and fail
// with ErrMalformedProblem when the two states differ.
func WithStrictValidation() RunOption {
	return func(c *runConfig) {
		c.strictValidation = true
	}
}

// WithStats copies the run's counters into s when the search returns.
func WithStats(s *Stats) RunOption {
	return func(c *runConfig) {
		c.stats = s
	}
}

// WithLogger sets the logger for search events.
// Pass nil to disable logging.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	node, err := statespace.BreadthFirstSearch(ctx, p, statespace.WithLogger(logger))
func WithLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics.
// Uses the global meter provider.
func WithMetrics(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing.
// Uses the global tracer provider.
func WithTracing(enabled bool) RunOption {
	return func(c *runConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// Stats holds counters for one search invocation.
type Stats struct {
	// Expanded is the number of nodes whose successors were generated.
	Expanded int
	// Generated is the number of child nodes created.
	Generated int
	// PeakFrontier is the largest frontier size observed.
	PeakFrontier int
	// Iterations is the number of depth-limited passes run by iterative deepening.
	Iterations int
}
