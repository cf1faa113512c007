package statespace

import (
	"context"
	"fmt"

	"github.com/randalmurphal/statespace/pkg/statespace/registry"
)

// Request bundles the inputs a strategy may need. Each strategy reads only
// the fields it uses.
type Request[S comparable, A any] struct {
	// Problem is the forward problem. Required.
	Problem Problem[S, A]
	// Backward is the reversed problem for bidirectional search.
	Backward Problem[S, A]
	// Heuristic estimates distance to the goal (astar, greedy, rbfs, bidirectional).
	Heuristic Heuristic[S]
	// BackwardHeuristic estimates distance to the start (bidirectional).
	BackwardHeuristic Heuristic[S]
	// DepthLimit is the limit for depth-limited search. Zero is a real limit:
	// only the initial state is goal-tested.
	DepthLimit int
	// MaxDepth bounds iterative deepening. Unlike DepthLimit, zero means
	// DefaultMaxDepth; use DepthLimit 0 with dls to test the root alone.
	MaxDepth int
}

// Strategy is a search driver callable by name.
type Strategy[S comparable, A any] func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error)

// Strategy names registered by NewStrategyRegistry.
const (
	StrategyBFS           = "bfs"
	StrategyDFS           = "dfs"
	StrategyUCS           = "ucs"
	StrategyGreedy        = "greedy"
	StrategyAStar         = "astar"
	StrategyDLS           = "dls"
	StrategyIDS           = "ids"
	StrategyBidirectional = "bidirectional"
	StrategyRBFS          = "rbfs"
)

// NewStrategyRegistry returns a registry holding every driver in this package.
//
// Example:
//
//	strategies := statespace.NewStrategyRegistry[Cell, Move]()
//	solve, err := strategies.Lookup("astar")
//	if err != nil {
//	    return err
//	}
//	node, err := solve(ctx, statespace.Request[Cell, Move]{Problem: p, Heuristic: h})
func NewStrategyRegistry[S comparable, A any]() *registry.Registry[string, Strategy[S, A]] {
	r := registry.New[string, Strategy[S, A]]()

	r.MustRegister(StrategyBFS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return BreadthFirstSearch(ctx, req.Problem, opts...)
	})
	r.MustRegister(StrategyDFS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return DepthFirstSearch(ctx, req.Problem, opts...)
	})
	r.MustRegister(StrategyUCS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return UniformCostSearch(ctx, req.Problem, opts...)
	})
	r.MustRegister(StrategyGreedy, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return GreedyBestFirstSearch(ctx, req.Problem, req.Heuristic, opts...)
	})
	r.MustRegister(StrategyAStar, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return AStarSearch(ctx, req.Problem, req.Heuristic, opts...)
	})
	r.MustRegister(StrategyDLS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return DepthLimitedSearch(ctx, req.Problem, req.DepthLimit, opts...)
	})
	r.MustRegister(StrategyIDS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		maxDepth := req.MaxDepth
		if maxDepth == 0 {
			maxDepth = DefaultMaxDepth
		}
		return IterativeDeepeningSearch(ctx, req.Problem, maxDepth, opts...)
	})
	r.MustRegister(StrategyBidirectional, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		if req.Backward == nil {
			return nil, fmt.Errorf("%w: bidirectional search needs a backward problem", ErrInvalidArgument)
		}
		return BidirectionalAStar(ctx, req.Problem, req.Heuristic, req.Backward, req.BackwardHeuristic, opts...)
	})
	r.MustRegister(StrategyRBFS, func(ctx context.Context, req Request[S, A], opts ...RunOption) (*Node[S, A], error) {
		return RecursiveBestFirstSearch(ctx, req.Problem, req.Heuristic, opts...)
	})

	return r
}
