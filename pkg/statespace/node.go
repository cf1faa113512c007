package statespace

import (
	"math"
	"slices"
)

// Node is one path from the initial state, identified by its last state.
//
// Nodes are not modified after construction, except for F which recursive
// best-first search uses to store backed-up values.
type Node[S comparable, A any] struct {
	// State is the state this path ends in.
	State S
	// Parent is the node this one was expanded from. Nil for the root.
	Parent *Node[S, A]
	// Action produced this node from Parent. Zero value for the root.
	Action A
	// PathCost is the sum of action costs from the root.
	PathCost float64
	// Depth is the number of actions from the root.
	Depth int
	// F is the backed-up evaluation used by recursive best-first search.
	F float64
}

// NewRoot returns a root node for state s.
func NewRoot[S comparable, A any](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool {
	return n.Parent == nil
}

// Path returns the nodes from the root to n, in order.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// onPath reports whether s occurs on the path from the root to n.
func (n *Node[S, A]) onPath(s S) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State == s {
			return true
		}
	}
	return false
}

// isCycle reports whether n revisits a state held by one of its ancestors.
func isCycle[S comparable, A any](n *Node[S, A]) bool {
	return n.Parent != nil && n.Parent.onPath(n.State)
}

// ExtractSolution returns the actions from the root to n and the total cost.
// A nil node yields no actions and an infinite cost.
func ExtractSolution[S comparable, A any](n *Node[S, A]) ([]A, float64) {
	if n == nil {
		return nil, math.Inf(1)
	}
	return ExtractActions(n), n.PathCost
}

// ExtractActions returns the actions from the root to n.
func ExtractActions[S comparable, A any](n *Node[S, A]) []A {
	if n == nil {
		return nil
	}
	actions := make([]A, 0, n.Depth)
	for _, node := range n.Path() {
		if !node.IsRoot() {
			actions = append(actions, node.Action)
		}
	}
	return actions
}

// ExtractStates returns the states from the root to n.
func ExtractStates[S comparable, A any](n *Node[S, A]) []S {
	if n == nil {
		return nil
	}
	path := n.Path()
	states := make([]S, len(path))
	for i, node := range path {
		states[i] = node.State
	}
	return states
}
