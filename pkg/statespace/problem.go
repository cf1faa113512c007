package statespace

// Problem defines a state space.
//
// Actions, Result and ActionCost must be pure functions of their arguments so
// that a Node's path can be replayed deterministically. The order of the
// slice returned by Actions determines traversal order and tie-breaking.
type Problem[S comparable, A any] interface {
	// Initial returns the start state.
	Initial() S

	// IsGoal reports whether s satisfies the goal.
	IsGoal(s S) bool

	// Actions returns the actions available in s.
	Actions(s S) []A

	// Result returns the state reached by applying a in s.
	Result(s S, a A) S

	// ActionCost returns the cost of moving from s to next via a.
	// Cost-aware strategies require it to be non-negative.
	ActionCost(s S, a A, next S) float64
}

// Inverter is implemented by backward problems whose actions can be mapped
// onto forward actions. Invert receives a backward step from -> to taken with
// action a and returns the forward action that moves from to back to from.
//
// Bidirectional search uses it to re-express the backward half of a spliced
// path in forward terms.
type Inverter[S comparable, A any] interface {
	Invert(from S, a A, to S) A
}

// GoalState is an embeddable goal test comparing against a single state.
type GoalState[S comparable] struct {
	Goal S
}

// IsGoal reports whether s equals the goal state.
func (g GoalState[S]) IsGoal(s S) bool {
	return s == g.Goal
}

// UnitCost is an embeddable ActionCost that charges 1 for every action.
type UnitCost[S comparable, A any] struct{}

// ActionCost always returns 1.
func (UnitCost[S, A]) ActionCost(S, A, S) float64 {
	return 1
}

// Heuristic estimates the remaining cost from a state to the goal.
type Heuristic[S comparable] func(s S) float64

// EvalFunc orders nodes on a best-first frontier. Lower is better.
type EvalFunc[S comparable, A any] func(n *Node[S, A]) float64

// ZeroHeuristic estimates zero for every state.
func ZeroHeuristic[S comparable](S) float64 {
	return 0
}

// PathCostEval evaluates a node by its path cost, g(n).
func PathCostEval[S comparable, A any]() EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 {
		return n.PathCost
	}
}

// AStarEval evaluates a node by g(n) + h(n).
func AStarEval[S comparable, A any](h Heuristic[S]) EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 {
		return n.PathCost + h(n.State)
	}
}

// GreedyEval evaluates a node by h(n) alone.
func GreedyEval[S comparable, A any](h Heuristic[S]) EvalFunc[S, A] {
	return func(n *Node[S, A]) float64 {
		return h(n.State)
	}
}

func mustProblem[S comparable, A any](p Problem[S, A], fn string) {
	if p == nil {
		panic("statespace: " + fn + " called with nil Problem")
	}
}
