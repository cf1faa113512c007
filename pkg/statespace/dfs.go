package statespace

import "context"

// DepthFirstSearch explores the deepest unexpanded node first.
//
// States are marked reached when they are expanded and never expanded twice,
// so the search terminates on finite graphs with cycles. Successors are
// explored in action order. The goal test is applied when a node is popped.
// The returned path is not necessarily the shortest.
func DepthFirstSearch[S comparable, A any](ctx context.Context, p Problem[S, A], opts ...RunOption) (*Node[S, A], error) {
	mustProblem(p, "DepthFirstSearch")
	r := newRun[S, A](ctx, "dfs", opts)
	return r.finish(depthFirst(r, p))
}

func depthFirst[S comparable, A any](r *run[S, A], p Problem[S, A]) (*Node[S, A], error) {
	frontier := &stack[S, A]{}
	frontier.Push(NewRoot[S, A](p.Initial()))
	reached := make(map[S]struct{})
	r.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		node := frontier.Pop()
		if _, seen := reached[node.State]; seen {
			continue
		}
		reached[node.State] = struct{}{}
		if p.IsGoal(node.State) {
			return node, nil
		}

		children, err := r.expand(p, node, false)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the first action is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			if _, seen := reached[children[i].State]; !seen {
				frontier.Push(children[i])
			}
		}
		r.observeFrontier(frontier.Len())
	}
	return nil, ErrNoSolution
}
