package scenario

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/randalmurphal/statespace/pkg/statespace"
	"github.com/randalmurphal/statespace/pkg/statespace/config"
)

// Kind identifies the problem family of a scenario.
type Kind string

// Problem kinds accepted in scenario files.
const (
	KindGrid   Kind = "grid"
	KindGraph  Kind = "graph"
	KindSQLite Kind = "sqlite"
)

// Scenario is a loaded problem together with its search settings.
// Exactly one of Grid and Graph is set.
type Scenario struct {
	Name   string
	Kind   Kind
	Search config.Search

	Grid  *Grid
	Graph *GraphProblem

	// Estimates holds per-vertex heuristic values for graph problems.
	Estimates map[string]float64
}

// Load reads a scenario file. Relative database paths are resolved against
// the file's directory.
func Load(ctx context.Context, path string) (*Scenario, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(ctx, cfg, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse builds a scenario from a decoded document.
func Parse(ctx context.Context, cfg config.Config, baseDir string) (*Scenario, error) {
	search, err := config.ParseSearch(cfg.Sub("search"))
	if err != nil {
		return nil, err
	}

	problem := cfg.Sub("problem")
	sc := &Scenario{
		Name:   cfg.String("name", ""),
		Kind:   Kind(problem.String("kind", "")),
		Search: search,
	}

	switch sc.Kind {
	case KindGrid:
		sc.Grid, err = parseGrid(problem)
	case KindGraph:
		var edges []Edge
		if edges, err = parseEdges(problem.List("edges")); err == nil {
			sc.Graph, err = graphProblem(problem, edges)
		}
	case KindSQLite:
		sc.Graph, err = loadStoredGraph(ctx, problem, baseDir)
	default:
		return nil, fmt.Errorf("%w: unknown problem kind %q", statespace.ErrInvalidArgument, sc.Kind)
	}
	if err != nil {
		return nil, err
	}

	if sc.Graph != nil {
		sc.Estimates, err = parseEstimates(problem.Sub("estimates"))
		if err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func parseGrid(c config.Config) (*Grid, error) {
	start, ok := c.IntPair("start")
	if !ok {
		return nil, fmt.Errorf("%w: grid start must be [row, col]", statespace.ErrInvalidArgument)
	}
	goal, ok := c.IntPair("goal")
	if !ok {
		return nil, fmt.Errorf("%w: grid goal must be [row, col]", statespace.ErrInvalidArgument)
	}
	pairs, ok := c.IntPairs("walls")
	if !ok {
		return nil, fmt.Errorf("%w: grid walls must be a list of [row, col]", statespace.ErrInvalidArgument)
	}

	walls := make([]Cell, len(pairs))
	for i, p := range pairs {
		walls[i] = Cell{Row: p[0], Col: p[1]}
	}
	return NewGrid(c.Int("rows", 0), c.Int("cols", 0), walls,
		Cell{Row: start[0], Col: start[1]}, Cell{Row: goal[0], Col: goal[1]})
}

func parseEdges(raw []any) ([]Edge, error) {
	edges := make([]Edge, 0, len(raw))
	for i, item := range raw {
		fields, ok := item.([]any)
		if !ok || len(fields) != 3 {
			return nil, fmt.Errorf("%w: edge %d must be [from, to, cost]", statespace.ErrInvalidArgument, i)
		}
		from, okFrom := vertexName(fields[0])
		to, okTo := vertexName(fields[1])
		cost, okCost := config.ToFloat(fields[2])
		if !okFrom || !okTo || !okCost {
			return nil, fmt.Errorf("%w: edge %d must be [from, to, cost]", statespace.ErrInvalidArgument, i)
		}
		edges = append(edges, Edge{From: from, To: to, Cost: cost})
	}
	return edges, nil
}

func graphProblem(c config.Config, edges []Edge) (*GraphProblem, error) {
	g, err := NewGraph(c.Bool("directed", false), edges)
	if err != nil {
		return nil, err
	}
	return newGraphProblemFrom(g, c)
}

func newGraphProblemFrom(g *Graph, c config.Config) (*GraphProblem, error) {
	start, okStart := vertexName(c.Raw()["start"])
	goal, okGoal := vertexName(c.Raw()["goal"])
	if !okStart || !okGoal {
		return nil, fmt.Errorf("%w: graph start and goal must be vertex names", statespace.ErrInvalidArgument)
	}
	return NewGraphProblem(g, start, goal)
}

func loadStoredGraph(ctx context.Context, c config.Config, baseDir string) (*GraphProblem, error) {
	path := c.String("db", "")
	name := c.String("graph", "")
	if path == "" || name == "" {
		return nil, fmt.Errorf("%w: sqlite problems need db and graph", statespace.ErrInvalidArgument)
	}
	if path != ":memory:" && !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	store, err := NewGraphStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	g, err := store.LoadGraph(ctx, name, c.Bool("directed", false))
	if err != nil {
		return nil, err
	}
	return newGraphProblemFrom(g, c)
}

func parseEstimates(c config.Config) (map[string]float64, error) {
	raw := c.Raw()
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(raw))
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		v, ok := config.ToFloat(raw[k])
		if !ok {
			return nil, fmt.Errorf("%w: estimate for %q is not a number", statespace.ErrInvalidArgument, k)
		}
		out[k] = v
	}
	return out, nil
}

// vertexName accepts strings and integers, since YAML decodes bare numbers
// as int.
func vertexName(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, n != ""
	case int:
		return strconv.Itoa(n), true
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10), true
		}
	}
	return "", false
}
