package statespace

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/statespace/pkg/statespace/observability"
)

// DefaultMaxDepth is the depth bound used by iterative deepening when the
// caller does not supply one.
const DefaultMaxDepth = 50

// DepthLimitedSearch runs depth-first search that never expands a node
// deeper than limit.
//
// It returns the goal node on success. ErrCutoff is returned when any node
// was pruned by depth, even if every other branch was exhausted, because a
// deeper limit might reveal a solution. ErrNoSolution is returned only when
// the space was exhausted within the limit. Cycles are detected against the
// current path, not a global reached set.
func DepthLimitedSearch[S comparable, A any](ctx context.Context, p Problem[S, A], limit int, opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "DepthLimitedSearch")
	r := newRun[S, A](ctx, "dls", opts)
	return r.finish(depthLimited(r, p, limit))
}

func depthLimited[S comparable, A any](r *run[S, A], p Problem[S, A], limit int) (*Node[S, A], error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative depth limit %d", ErrInvalidArgument, limit)
	}

	frontier := &stack[S, A]{}
	frontier.Push(NewRoot[S, A](p.Initial()))
	result := ErrNoSolution
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		node := frontier.Pop()
		if node.Depth > limit {
			result = ErrCutoff
			continue
		}
		if p.IsGoal(node.State) {
			return node, nil
		}
		if isCycle(node) {
			continue
		}
		children, err := r.expand(p, node, false)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			frontier.Push(c)
		}
		r.observeFrontier(frontier.Len())
	}
	return nil, result
}

// IterativeDeepeningSearch runs depth-limited search with limits 0, 1, 2, ...
// up to maxDepth.
//
// It stops at the first limit that succeeds, and stops with ErrNoSolution as
// soon as a limit finishes without any cutoff. If maxDepth is reached without
// success the error wraps ErrNoSolution.
func IterativeDeepeningSearch[S comparable, A any](ctx context.Context, p Problem[S, A], maxDepth int, opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "IterativeDeepeningSearch")
	r := newRun[S, A](ctx, "ids", opts)
	return r.finish(iterativeDeepening(r, p, maxDepth))
}

func iterativeDeepening[S comparable, A any](r *run[S, A], p Problem[S, A], maxDepth int) (*Node[S, A], error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: negative depth bound %d", ErrInvalidArgument, maxDepth)
	}

	for limit := 0; limit <= maxDepth; limit++ {
		node, err := r.iteration(p, limit)
		if err == nil {
			return node, nil
		}
		if !errors.Is(err, ErrCutoff) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: depth bound %d reached", ErrNoSolution, maxDepth)
}

// iteration runs one depth-limited pass inside its own span.
func (r *run[S, A]) iteration(p Problem[S, A], limit int) (*Node[S, A], error) {
	var span trace.Span
	parent := r.ctx
	if r.cfg.tracingEnabled {
		r.ctx, span = r.cfg.spans.StartIterationSpan(parent, limit)
	}

	node, err := depthLimited(r, p, limit)
	r.ctx = parent
	r.stats.Iterations++
	observability.LogIteration(r.logger, limit, outcome(err))

	if span != nil {
		spanErr := err
		if isExpected(err) {
			spanErr = nil
		}
		r.cfg.spans.EndSpanWithError(span, spanErr)
	}
	return node, err
}
