package statespace

import (
	"context"
	"fmt"
	"math"
)

var inf = math.Inf(1)

// BestFirstSearch expands the frontier node with the lowest f(n) first.
//
// The goal test is applied when a node is popped. A state already reached is
// only replaced, and its new node pushed, when the new path is strictly
// cheaper. Superseded frontier entries are not removed and may still be
// expanded. Equal priorities pop in insertion order.
func BestFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], f EvalFunc[S, A], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "BestFirstSearch")
	r := newRun[S, A](ctx, "best_first", opts)
	return r.finish(bestFirst(r, p, f))
}

// UniformCostSearch is best-first search on path cost (Dijkstra's algorithm).
// The returned path has minimum cost when all action costs are non-negative.
func UniformCostSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "UniformCostSearch")
	r := newRun[S, A](ctx, "ucs", opts)
	return r.finish(bestFirst(r, p, PathCostEval[S, A]()))
}

// AStarSearch is best-first search on f(n) = g(n) + h(n).
// The returned path has minimum cost when h is admissible and consistent.
func AStarSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "AStarSearch")
	r := newRun[S, A](ctx, "astar", opts)
	if h == nil {
		return r.finish(nil, fmt.Errorf("%w: nil heuristic", ErrInvalidArgument))
	}
	return r.finish(bestFirst(r, p, AStarEval[S, A](h)))
}

// GreedyBestFirstSearch is best-first search on f(n) = h(n).
// It is fast on informative heuristics but makes no optimality guarantee.
func GreedyBestFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], h Heuristic[S], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "GreedyBestFirstSearch")
	r := newRun[S, A](ctx, "greedy", opts)
	if h == nil {
		return r.finish(nil, fmt.Errorf("%w: nil heuristic", ErrInvalidArgument))
	}
	return r.finish(bestFirst(r, p, GreedyEval[S, A](h)))
}

func bestFirst[S comparable, A any](r *run[S, A], p Problem[S, A], f EvalFunc[S, A]) (*Node[S, A], error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil evaluation function", ErrInvalidArgument)
	}

	root := NewRoot[S, A](p.Initial())
	frontier := newPriorityQueue(f)
	frontier.Push(root)
	reached := map[S]*Node[S, A]{root.State: root}
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		node := frontier.Pop()
		if p.IsGoal(node.State) {
			return node, nil
		}
		children, err := r.expand(p, node, true)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if prev, ok := reached[c.State]; !ok || c.PathCost < prev.PathCost {
				reached[c.State] = c
				frontier.Push(c)
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return nil, ErrNoSolution
}
