package statespace

import "context"

// BreadthFirstSearch searches in order of depth using a FIFO frontier.
//
// The goal test is applied to children as they are generated, so the first
// goal found is at minimum depth. Action costs are ignored for ordering; the
// returned path is shortest in number of actions.
func BreadthFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "BreadthFirstSearch")
	r := newRun[S, A](ctx, "bfs", opts)
	return r.finish(breadthFirst(r, p))
}

func breadthFirst[S comparable, A any](r *run[S, A], p Problem[S, A]) (*Node[S, A], error) {
	root := NewRoot[S, A](p.Initial())
	if p.IsGoal(root.State) {
		return root, nil
	}

	frontier := &queue[S, A]{}
	frontier.Push(root)
	reached := map[S]struct{}{root.State: {}}
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		node := frontier.Pop()
		children, err := r.expand(p, node, false)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if p.IsGoal(c.State) {
				return c, nil
			}
			if _, seen := reached[c.State]; !seen {
				reached[c.State] = struct{}{}
				frontier.Push(c)
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return nil, ErrNoSolution
}
