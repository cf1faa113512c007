package statespace

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/statespace/pkg/statespace/observability"
)

// run carries per-invocation state shared by every driver: resource guards,
// counters and observability hooks.
type run[S comparable, A any] struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      runConfig
	strategy string
	runID    string
	logger   *slog.Logger
	span     trace.Span
	stats    Stats
	start    time.Time
}

func newRun[S comparable, A any](ctx context.Context, strategy string, opts []RunOption) *run[S, A] {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := cfg.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	r := &run[S, A]{
		ctx:      ctx,
		cfg:      cfg,
		strategy: strategy,
		runID:    runID,
		logger:   observability.EnrichLogger(cfg.logger, runID, strategy),
		start:    time.Now(),
	}
	if cfg.timeout > 0 {
		r.ctx, r.cancel = context.WithTimeout(ctx, cfg.timeout)
	}
	if cfg.tracingEnabled {
		r.ctx, r.span = cfg.spans.StartSearchSpan(r.ctx, strategy, runID)
	}

	observability.LogSearchStart(cfg.logger, runID, strategy)
	return r
}

// tick checks the resource guards. Drivers call it every time a node is
// taken from the frontier.
func (r *run[S, A]) tick() error {
	if err := r.ctx.Err(); err != nil {
		reason := "cancelled"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "deadline exceeded"
		}
		return r.exhausted(reason, err)
	}
	if r.cfg.maxExpansions > 0 && r.stats.Expanded >= r.cfg.maxExpansions {
		return r.exhausted("max expansions", nil)
	}
	return nil
}

func (r *run[S, A]) exhausted(reason string, cause error) error {
	return &ExhaustedError{
		Strategy: r.strategy,
		Reason:   reason,
		Expanded: r.stats.Expanded,
		Cause:    cause,
	}
}

func (r *run[S, A]) observeFrontier(size int) {
	if size > r.stats.PeakFrontier {
		r.stats.PeakFrontier = size
	}
}

// finish records the outcome of the run and returns it unchanged.
// On error the node is always nil.
func (r *run[S, A]) finish(node *Node[S, A], err error) (*Node[S, A], error) {
	if r.cancel != nil {
		defer r.cancel()
	}

	duration := time.Since(r.start)
	summary := observability.SearchSummary{
		Expanded:     r.stats.Expanded,
		Generated:    r.stats.Generated,
		PeakFrontier: r.stats.PeakFrontier,
		DurationMs:   float64(duration.Microseconds()) / 1000,
	}

	// Metrics are recorded against the caller's context; the run context may
	// already be past its deadline.
	metricsCtx := context.WithoutCancel(r.ctx)
	r.cfg.metrics.RecordSearch(metricsCtx, r.strategy, outcome(err), duration)
	r.cfg.metrics.RecordNodes(metricsCtx, r.strategy, int64(r.stats.Expanded), int64(r.stats.Generated))
	r.cfg.metrics.RecordFrontierPeak(metricsCtx, r.strategy, int64(r.stats.PeakFrontier))

	if err != nil {
		node = nil
		expected := isExpected(err)
		observability.LogSearchFailed(r.cfg.logger, r.runID, r.strategy, err, expected, summary)
		if r.span != nil {
			if expected {
				r.cfg.spans.AddSpanEvent(r.ctx, "search."+outcome(err))
				r.cfg.spans.EndSpanWithError(r.span, nil)
			} else {
				r.cfg.spans.EndSpanWithError(r.span, err)
			}
		}
	} else {
		observability.LogSearchComplete(r.cfg.logger, r.runID, r.strategy, node.PathCost, node.Depth, summary)
		if r.span != nil {
			r.cfg.spans.AddSpanEvent(r.ctx, "solution.found",
				attribute.Float64("cost", node.PathCost),
				attribute.Int("depth", node.Depth),
			)
			r.cfg.spans.EndSpanWithError(r.span, nil)
		}
	}

	if r.cfg.stats != nil {
		*r.cfg.stats = r.stats
	}
	return node, err
}
