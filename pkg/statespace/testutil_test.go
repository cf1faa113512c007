package statespace

import (
	"context"
	"math"
	"math/rand/v2"
)

// Test problem types used across tests

// edge is one weighted arc of a testGraph.
type edge struct {
	to   string
	cost float64
}

// testGraph is a weighted graph whose actions are neighbour names.
type testGraph struct {
	GoalState[string]
	start string
	adj   map[string][]edge
}

func (g *testGraph) Initial() string { return g.start }

func (g *testGraph) Actions(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, e.to)
	}
	return out
}

func (g *testGraph) Result(_ string, a string) string { return a }

func (g *testGraph) ActionCost(s string, a string, _ string) float64 {
	for _, e := range g.adj[s] {
		if e.to == a {
			return e.cost
		}
	}
	return math.Inf(1)
}

// with returns a copy of g with a different start and goal.
func (g *testGraph) with(start, goal string) *testGraph {
	return &testGraph{GoalState: GoalState[string]{Goal: goal}, start: start, adj: g.adj}
}

// ucsGraph is the weighted sample graph. The cheapest A to G path is A-B-D-G at cost 4.
func ucsGraph() *testGraph {
	return &testGraph{
		GoalState: GoalState[string]{Goal: "G"},
		start:     "A",
		adj: map[string][]edge{
			"A": {{"B", 1}, {"C", 4}},
			"B": {{"A", 1}, {"D", 2}, {"E", 5}},
			"C": {{"A", 4}, {"F", 3}},
			"D": {{"B", 2}, {"G", 1}},
			"E": {{"B", 5}, {"G", 2}},
			"F": {{"C", 3}, {"G", 2}},
			"G": {{"D", 1}, {"E", 2}, {"F", 2}},
		},
	}
}

// sampleTree is A->{B,C}, B->{D,E}, C->{F}, E->{G} with unit costs.
func sampleTree() *testGraph {
	return &testGraph{
		GoalState: GoalState[string]{Goal: "G"},
		start:     "A",
		adj: map[string][]edge{
			"A": {{"B", 1}, {"C", 1}},
			"B": {{"D", 1}, {"E", 1}},
			"C": {{"F", 1}},
			"E": {{"G", 1}},
		},
	}
}

// randomGraph builds a reproducible directed graph with n nodes.
func randomGraph(seed uint64, n int, density float64, unit bool) *testGraph {
	rng := rand.New(rand.NewPCG(seed, seed*7+1))
	g := &testGraph{adj: make(map[string][]edge)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() > density {
				continue
			}
			cost := 1.0
			if !unit {
				cost = float64(rng.IntN(9) + 1)
			}
			g.adj[nodeName(i)] = append(g.adj[nodeName(i)], edge{nodeName(j), cost})
		}
	}
	return g
}

func nodeName(i int) string { return string(rune('a' + i)) }

// floydWarshall returns all-pairs shortest path costs for g over n nodes.
func floydWarshall(g *testGraph, n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
		for _, e := range g.adj[nodeName(i)] {
			j := int(e.to[0] - 'a')
			dist[i][j] = math.Min(dist[i][j], e.cost)
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

// cell is a grid coordinate.
type cell struct{ r, c int }

// testGrid is a 4-connected grid with walls and unit costs.
type testGrid struct {
	GoalState[cell]
	UnitCost[cell, string]
	rows, cols int
	start      cell
	walls      map[cell]bool
}

var moves = []struct {
	name   string
	dr, dc int
}{
	{"U", -1, 0},
	{"D", 1, 0},
	{"L", 0, -1},
	{"R", 0, 1},
}

func newTestGrid(rows, cols int, start, goal cell, walls ...cell) *testGrid {
	g := &testGrid{
		GoalState: GoalState[cell]{Goal: goal},
		rows:      rows,
		cols:      cols,
		start:     start,
		walls:     make(map[cell]bool),
	}
	for _, w := range walls {
		g.walls[w] = true
	}
	return g
}

func (g *testGrid) Initial() cell { return g.start }

func (g *testGrid) free(c cell) bool {
	return c.r >= 0 && c.r < g.rows && c.c >= 0 && c.c < g.cols && !g.walls[c]
}

func (g *testGrid) Actions(s cell) []string {
	var out []string
	for _, m := range moves {
		if g.free(cell{s.r + m.dr, s.c + m.dc}) {
			out = append(out, m.name)
		}
	}
	return out
}

func (g *testGrid) Result(s cell, a string) cell {
	for _, m := range moves {
		if m.name == a {
			return cell{s.r + m.dr, s.c + m.dc}
		}
	}
	return s
}

func (g *testGrid) Invert(_ cell, a string, _ cell) string {
	return map[string]string{"U": "D", "D": "U", "L": "R", "R": "L"}[a]
}

// reversed returns the backward problem: same walls, start and goal swapped.
func (g *testGrid) reversed() *testGrid {
	out := *g
	out.start, out.Goal = g.Goal, g.start
	return &out
}

func grid4() *testGrid {
	return newTestGrid(4, 4, cell{0, 0}, cell{3, 3}, cell{1, 1}, cell{1, 2}, cell{2, 1})
}

func grid6() *testGrid {
	return newTestGrid(6, 6, cell{0, 0}, cell{5, 5},
		cell{1, 1}, cell{1, 2}, cell{2, 1}, cell{3, 3}, cell{2, 4})
}

func manhattan(goal cell) Heuristic[cell] {
	return func(s cell) float64 {
		return math.Abs(float64(s.r-goal.r)) + math.Abs(float64(s.c-goal.c))
	}
}

// isValidGridPath reports whether states walk g one free step at a time.
func isValidGridPath(g *testGrid, states []cell) bool {
	for i, s := range states {
		if !g.free(s) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := states[i-1]
		if math.Abs(float64(s.r-prev.r))+math.Abs(float64(s.c-prev.c)) != 1 {
			return false
		}
	}
	return true
}

// countingProblem wraps a problem and counts calls to Actions.
type countingProblem[S comparable, A any] struct {
	Problem[S, A]
	actions int
}

func (c *countingProblem[S, A]) Actions(s S) []A {
	c.actions++
	return c.Problem.Actions(s)
}

func testCtx() context.Context {
	return context.Background()
}
