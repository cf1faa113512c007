/*
Package statespace provides classic state-space search algorithms over a
generic problem abstraction.

# Overview

A search problem is any type implementing Problem: it names an initial state,
a goal test, the actions available in a state, a deterministic transition
function and a non-negative action cost. Every strategy driver in this package
works uniformly over that interface and returns the terminal Node of a
solution path, or an error describing why no solution was produced.

Strategies:
  - BreadthFirstSearch: FIFO frontier, goal test at generation time
  - DepthFirstSearch: explicit stack with a global reached set
  - UniformCostSearch: best-first on path cost (Dijkstra)
  - BestFirstSearch: best-first on an arbitrary evaluation function
  - AStarSearch and GreedyBestFirstSearch: heuristic best-first
  - DepthLimitedSearch and IterativeDeepeningSearch
  - BidirectionalSearch and BidirectionalAStar
  - RecursiveBestFirstSearch: linear-memory A*

# Basic Usage

	type Maze struct {
	    statespace.GoalState[Cell]
	    statespace.UnitCost[Cell, Move]
	    // ...
	}

	node, err := statespace.AStarSearch(ctx, maze, scenario.Manhattan(goal))
	if errors.Is(err, statespace.ErrNoSolution) {
	    // frontier exhausted
	}
	actions, cost := statespace.ExtractSolution(node)

# Failure Outcomes

Drivers never panic when a problem has no solution. Failure is an error value:

  - ErrNoSolution: the frontier was exhausted without reaching a goal
  - ErrCutoff: depth-limited search pruned at least one node by depth
  - ErrExhausted: an expansion budget, deadline or recursion guard fired
  - ErrMalformedProblem: a negative or NaN action cost was observed

A nil Problem is a programming error and panics at the call site.

# Run Options

Every driver accepts RunOption values:

	node, err := statespace.UniformCostSearch(ctx, p,
	    statespace.WithMaxExpansions(100000),
	    statespace.WithTimeout(2*time.Second),
	    statespace.WithLogger(slog.Default()),
	    statespace.WithStats(&stats),
	)

Metrics and tracing use the global OpenTelemetry providers and are enabled
with WithMetrics and WithTracing.

# Concurrency

A search invocation owns its frontier and reached structures for its whole
lifetime. Drivers may be called concurrently on problems whose methods are
safe for concurrent use.
*/
package statespace
