package statespace

import (
	"context"
	"fmt"
	"math"
	"slices"
)

// RecursiveBestFirstSearch is a linear-memory approximation of A*.
//
// Each child's f value is max(g+h, f(parent)), so f never decreases along a
// path. The search recurses into the best child with a limit of the smaller
// of the caller's limit and the second-best sibling's f; when the recursion
// fails, the child's f is replaced by the backed-up value and the siblings
// are re-ranked. Cycles are detected against the current path.
//
// Recursion depth is bounded by WithMaxRecursion; exceeding it returns
// ErrExhausted.
func RecursiveBestFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "RecursiveBestFirstSearch")
	r := newRun[S, A](ctx, "rbfs", opts)
	if h == nil {
		return r.finish(nil, fmt.Errorf("%w: nil heuristic", ErrInvalidArgument))
	}

	root := NewRoot[S, A](p.Initial())
	root.F = h(root.State)
	node, _, err := recursiveBestFirst(r, p, h, root, inf)
	if err == nil && node == nil {
		err = ErrNoSolution
	}
	return r.finish(node, err)
}

func recursiveBestFirst[S comparable, A any](r *run[S, A], p Problem[S, A], h Heuristic[S], node *Node[S, A], fLimit float64) (*Node[S, A], float64, error) {
	if node.Depth > r.cfg.maxRecursion {
		return nil, 0, r.exhausted("max recursion", nil)
	}
	if err := r.tick(); err != nil {
		return nil, 0, err
	}
	if p.IsGoal(node.State) {
		return node, node.F, nil
	}

	children, err := r.expand(p, node, true)
	if err != nil {
		return nil, 0, err
	}
	successors := children[:0]
	for _, c := range children {
		if isCycle(c) {
			continue
		}
		c.F = math.Max(c.PathCost+h(c.State), node.F)
		successors = append(successors, c)
	}
	if len(successors) == 0 {
		return nil, inf, nil
	}
	r.observeFrontier(node.Depth + len(successors))

	for {
		slices.SortStableFunc(successors, func(a, b *Node[S, A]) int {
			switch {
			case a.F < b.F:
				return -1
			case a.F > b.F:
				return 1
			default:
				return 0
			}
		})
		best := successors[0]
		if best.F > fLimit || math.IsInf(best.F, 1) {
			return nil, best.F, nil
		}
		alt := inf
		if len(successors) > 1 {
			alt = successors[1].F
		}

		result, backedUp, err := recursiveBestFirst(r, p, h, best, math.Min(fLimit, alt))
		if err != nil {
			return nil, 0, err
		}
		best.F = backedUp
		if result != nil {
			return result, backedUp, nil
		}
	}
}
