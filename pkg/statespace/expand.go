package statespace

import (
	"iter"
	"math"
)

// Expand yields a child of n for every action available in n's state.
// Children are produced lazily, in action order. n is not modified.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) iter.Seq[*Node[S, A]] {
	mustProblem(p, "Expand")
	return func(yield func(*Node[S, A]) bool) {
		for _, a := range p.Actions(n.State) {
			c, _ := child(p, n, a)
			if !yield(c) {
				return
			}
		}
	}
}

// child applies a in n's state and also returns the raw step cost.
func child[S comparable, A any](p Problem[S, A], n *Node[S, A], a A) (*Node[S, A], float64) {
	next := p.Result(n.State, a)
	step := p.ActionCost(n.State, a, next)
	return &Node[S, A]{
		State:    next,
		Parent:   n,
		Action:   a,
		PathCost: n.PathCost + step,
		Depth:    n.Depth + 1,
	}, step
}

// expand materializes the children of n, validating them and updating the
// run's counters. Cost-aware strategies reject negative and NaN step costs.
func (r *run[S, A]) expand(p Problem[S, A], n *Node[S, A], costAware bool) ([]*Node[S, A], error) {
	r.stats.Expanded++

	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		c, step := child(p, n, a)
		if r.cfg.strictValidation {
			if again := p.Result(n.State, a); again != c.State {
				return nil, &MalformedProblemError{
					State:  n.State,
					Action: a,
					Reason: "Result returned different states for the same action",
				}
			}
		}
		if costAware {
			if math.IsNaN(step) || step < 0 {
				return nil, &MalformedProblemError{
					State:  n.State,
					Action: a,
					Reason: "action cost must be non-negative",
				}
			}
		}
		children = append(children, c)
	}
	r.stats.Generated += len(children)
	return children, nil
}
