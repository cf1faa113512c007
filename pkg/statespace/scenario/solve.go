package scenario

import (
	"context"
	"fmt"
	"slices"

	"github.com/randalmurphal/statespace/pkg/statespace"
)

// Heuristic names accepted in the search section.
const (
	HeuristicAuto      = ""
	HeuristicZero      = "zero"
	HeuristicManhattan = "manhattan"
	HeuristicTable     = "table"
)

// Result is the printable outcome of solving a scenario.
type Result struct {
	Scenario string      `json:"scenario,omitempty"`
	Strategy string      `json:"strategy"`
	Actions  []string    `json:"actions"`
	States   []string    `json:"states"`
	Cost     float64     `json:"cost"`
	Depth    int         `json:"depth"`
	Stats    ResultStats `json:"stats"`
}

// ResultStats mirrors statespace.Stats for encoding.
type ResultStats struct {
	Expanded     int `json:"expanded"`
	Generated    int `json:"generated"`
	PeakFrontier int `json:"peak_frontier"`
	Iterations   int `json:"iterations,omitempty"`
}

// Solve runs the scenario's strategy. opts are applied after the options
// derived from the search section, so callers can override them.
//
// On failure the returned Result still carries the strategy and stats.
func (s *Scenario) Solve(ctx context.Context, opts ...statespace.RunOption) (*Result, error) {
	runOpts := slices.Concat(s.Search.RunOptions(), opts)

	var (
		res *Result
		err error
	)
	switch {
	case s.Grid != nil:
		res, err = s.solveGrid(ctx, runOpts)
	case s.Graph != nil:
		res, err = s.solveGraph(ctx, runOpts)
	default:
		return nil, fmt.Errorf("%w: scenario %q has no problem", statespace.ErrInvalidArgument, s.Name)
	}
	if res != nil {
		res.Scenario = s.Name
	}
	return res, err
}

func (s *Scenario) solveGrid(ctx context.Context, opts []statespace.RunOption) (*Result, error) {
	g := s.Grid
	req := statespace.Request[Cell, Move]{
		Problem:    g,
		Backward:   g.Reversed(),
		DepthLimit: s.Search.DepthLimit,
		MaxDepth:   s.Search.MaxDepth,
	}
	switch s.Search.Heuristic {
	case HeuristicAuto, HeuristicManhattan:
		req.Heuristic = Manhattan(g.Goal)
		req.BackwardHeuristic = Manhattan(g.Start)
	case HeuristicZero:
		req.Heuristic = statespace.ZeroHeuristic[Cell]
		req.BackwardHeuristic = statespace.ZeroHeuristic[Cell]
	default:
		return nil, fmt.Errorf("%w: heuristic %q is not available for grids",
			statespace.ErrInvalidArgument, s.Search.Heuristic)
	}
	return solveWith(ctx, s.Search.Strategy, req, opts, Cell.String, func(m Move) string { return string(m) })
}

func (s *Scenario) solveGraph(ctx context.Context, opts []statespace.RunOption) (*Result, error) {
	p := s.Graph
	req := statespace.Request[string, string]{
		Problem:           p,
		Backward:          p.Reversed(),
		BackwardHeuristic: statespace.ZeroHeuristic[string],
		DepthLimit:        s.Search.DepthLimit,
		MaxDepth:          s.Search.MaxDepth,
	}
	switch s.Search.Heuristic {
	case HeuristicAuto:
		if s.Estimates != nil {
			req.Heuristic = TableHeuristic(s.Estimates)
		} else {
			req.Heuristic = statespace.ZeroHeuristic[string]
		}
	case HeuristicTable:
		if s.Estimates == nil {
			return nil, fmt.Errorf("%w: heuristic %q needs problem estimates",
				statespace.ErrInvalidArgument, s.Search.Heuristic)
		}
		req.Heuristic = TableHeuristic(s.Estimates)
	case HeuristicZero:
		req.Heuristic = statespace.ZeroHeuristic[string]
	default:
		return nil, fmt.Errorf("%w: heuristic %q is not available for graphs",
			statespace.ErrInvalidArgument, s.Search.Heuristic)
	}
	identity := func(v string) string { return v }
	return solveWith(ctx, s.Search.Strategy, req, opts, identity, identity)
}

func solveWith[S comparable, A any](
	ctx context.Context,
	strategy string,
	req statespace.Request[S, A],
	opts []statespace.RunOption,
	stateName func(S) string,
	actionName func(A) string,
) (*Result, error) {
	solve, err := statespace.NewStrategyRegistry[S, A]().Lookup(strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: strategy: %w", statespace.ErrInvalidArgument, err)
	}

	var stats statespace.Stats
	node, err := solve(ctx, req, slices.Concat(opts, []statespace.RunOption{statespace.WithStats(&stats)})...)

	res := &Result{
		Strategy: strategy,
		Stats: ResultStats{
			Expanded:     stats.Expanded,
			Generated:    stats.Generated,
			PeakFrontier: stats.PeakFrontier,
			Iterations:   stats.Iterations,
		},
	}
	if err != nil {
		return res, err
	}

	actions, cost := statespace.ExtractSolution(node)
	res.Cost = cost
	res.Depth = node.Depth
	res.Actions = make([]string, len(actions))
	for i, a := range actions {
		res.Actions[i] = actionName(a)
	}
	states := statespace.ExtractStates(node)
	res.States = make([]string, len(states))
	for i, st := range states {
		res.States[i] = stateName(st)
	}
	return res, nil
}
