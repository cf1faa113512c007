package statespace

import (
	"context"
	"fmt"

	"github.com/randalmurphal/statespace/pkg/statespace/observability"
)

// BidirectionalSearch runs a forward best-first search from forward's initial
// state and a backward best-first search from backward's initial state in one
// interleaved loop.
//
// backward must describe the reversed transition relation, with its initial
// state set to the forward goal. Each step expands the top of whichever
// frontier has the lower priority; ties go to the backward frontier. Every
// child whose state is already reached by the other direction yields a
// candidate path, and the cheapest candidate is kept. The loop runs until
// both frontiers are empty, so the result is the best meeting found rather
// than one proven optimal by an early stopping rule.
//
// The returned node ends at the forward goal and its path starts at the
// forward initial state. When backward implements Inverter, the backward half
// is re-expressed as forward actions and re-costed with forward.ActionCost.
func BidirectionalSearch[S comparable, A any](
	ctx context.Context,
	forward Problem[S, A], fF EvalFunc[S, A],
	backward Problem[S, A], fB EvalFunc[S, A],
	opts ...RunOption,
) (*Node[S, A], error) {
	mustProblem(forward, "BidirectionalSearch")
	mustProblem(backward, "BidirectionalSearch")
	r := newRun[S, A](ctx, "bidirectional", opts)
	if fF == nil || fB == nil {
		return r.finish(nil, fmt.Errorf("%w: nil evaluation function", ErrInvalidArgument))
	}
	return r.finish(bidirectional(r, forward, fF, backward, fB))
}

// BidirectionalAStar is BidirectionalSearch with fF = g + hF and fB = g + hB.
// hF estimates distance to the forward goal, hB distance to the forward start.
func BidirectionalAStar[S comparable, A any](
	ctx context.Context,
	forward Problem[S, A], hF Heuristic[S],
	backward Problem[S, A], hB Heuristic[S],
	opts ...RunOption,
) (*Node[S, A], error) {
	if hF == nil {
		hF = ZeroHeuristic[S]
	}
	if hB == nil {
		hB = ZeroHeuristic[S]
	}
	return BidirectionalSearch(ctx, forward, AStarEval[S, A](hF), backward, AStarEval[S, A](hB), opts...)
}

// direction is one half of a bidirectional search.
type direction[S comparable, A any] struct {
	name     string
	problem  Problem[S, A]
	frontier *priorityQueue[S, A]
	reached  map[S]*Node[S, A]
}

func newDirection[S comparable, A any](name string, p Problem[S, A], f EvalFunc[S, A]) *direction[S, A] {
	root := NewRoot[S, A](p.Initial())
	d := &direction[S, A]{
		name:     name,
		problem:  p,
		frontier: newPriorityQueue(f),
		reached:  map[S]*Node[S, A]{root.State: root},
	}
	d.frontier.Push(root)
	return d
}

type bidiSearch[S comparable, A any] struct {
	r        *run[S, A]
	fwd, bwd *direction[S, A]
	inverter Inverter[S, A]
	best     *Node[S, A]
}

func bidirectional[S comparable, A any](r *run[S, A], forward Problem[S, A], fF EvalFunc[S, A], backward Problem[S, A], fB EvalFunc[S, A]) (*Node[S, A], error) {
	b := &bidiSearch[S, A]{
		r:   r,
		fwd: newDirection("forward", forward, fF),
		bwd: newDirection("backward", backward, fB),
	}
	b.inverter, _ = backward.(Inverter[S, A])
	r.observeFrontier(b.fwd.frontier.Len() + b.bwd.frontier.Len())

	start := b.fwd.reached[forward.Initial()]
	if meet, ok := b.bwd.reached[start.State]; ok {
		b.consider(start, meet, "forward")
	}

	for b.fwd.frontier.Len() > 0 || b.bwd.frontier.Len() > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		var err error
		if b.forwardNext() {
			err = b.proceed(b.fwd, b.bwd)
		} else {
			err = b.proceed(b.bwd, b.fwd)
		}
		if err != nil {
			return nil, err
		}
		r.observeFrontier(b.fwd.frontier.Len() + b.bwd.frontier.Len())
	}

	if b.best == nil {
		return nil, ErrNoSolution
	}
	return b.best, nil
}

// forwardNext reports whether the forward frontier should be expanded next.
// An empty frontier never wins; otherwise ties go backward.
func (b *bidiSearch[S, A]) forwardNext() bool {
	switch {
	case b.bwd.frontier.Len() == 0:
		return true
	case b.fwd.frontier.Len() == 0:
		return false
	}
	return b.fwd.frontier.TopPriority() < b.bwd.frontier.TopPriority()
}

// proceed expands the top node of d and records meetings with other.
func (b *bidiSearch[S, A]) proceed(d, other *direction[S, A]) error {
	node := d.frontier.Pop()
	children, err := b.r.expand(d.problem, node, true)
	if err != nil {
		return err
	}
	for _, c := range children {
		if prev, ok := d.reached[c.State]; !ok || c.PathCost < prev.PathCost {
			d.reached[c.State] = c
			d.frontier.Push(c)
		}
		meet, ok := other.reached[c.State]
		if !ok {
			continue
		}
		if d == b.fwd {
			b.consider(c, meet, d.name)
		} else {
			b.consider(meet, c, d.name)
		}
	}
	return nil
}

// consider splices a forward node and a backward node that end in the same
// state, keeping the result if it is the cheapest candidate so far.
func (b *bidiSearch[S, A]) consider(f, bk *Node[S, A], from string) {
	candidate := b.splice(f, bk)
	if b.best == nil || candidate.PathCost < b.best.PathCost {
		b.best = candidate
		observability.LogCandidate(b.r.logger, candidate.PathCost, from)
	}
}

// splice appends the reversed backward chain of bk onto f.
func (b *bidiSearch[S, A]) splice(f, bk *Node[S, A]) *Node[S, A] {
	forward := b.fwd.problem
	tail := f
	for cur := bk; cur.Parent != nil; cur = cur.Parent {
		from, to := cur.State, cur.Parent.State
		next := &Node[S, A]{
			State:  to,
			Parent: tail,
			Depth:  tail.Depth + 1,
		}
		if b.inverter != nil {
			next.Action = b.inverter.Invert(cur.Parent.State, cur.Action, cur.State)
			next.PathCost = tail.PathCost + forward.ActionCost(from, next.Action, to)
		} else {
			next.Action = cur.Action
			next.PathCost = tail.PathCost + (cur.PathCost - cur.Parent.PathCost)
		}
		tail = next
	}
	return tail
}
