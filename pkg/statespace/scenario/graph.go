package scenario

import (
	"fmt"
	"math"

	"github.com/randalmurphal/statespace/pkg/statespace"
)

// Edge is a weighted connection between two named vertices.
type Edge struct {
	From string
	To   string
	Cost float64
}

type arc struct {
	to   string
	cost float64
}

// Graph is a weighted graph whose adjacency lists keep insertion order.
// Neighbour order determines traversal order for every strategy.
type Graph struct {
	Directed bool

	adj      map[string][]arc
	vertices []string
}

// NewGraph builds a graph from edges. Undirected graphs get an arc in both
// directions. A repeated edge keeps its first position and the lower cost.
func NewGraph(directed bool, edges []Edge) (*Graph, error) {
	g := &Graph{
		Directed: directed,
		adj:      make(map[string][]arc),
	}
	for i, e := range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d has an empty endpoint", statespace.ErrInvalidArgument, i)
		}
		if e.Cost < 0 || math.IsNaN(e.Cost) {
			return nil, fmt.Errorf("%w: edge %s->%s has invalid cost %v",
				statespace.ErrInvalidArgument, e.From, e.To, e.Cost)
		}
		g.addArc(e.From, e.To, e.Cost)
		if !directed {
			g.addArc(e.To, e.From, e.Cost)
		}
	}
	return g, nil
}

func (g *Graph) touch(v string) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
		g.vertices = append(g.vertices, v)
	}
}

func (g *Graph) addArc(from, to string, cost float64) {
	g.touch(from)
	g.touch(to)
	for i, a := range g.adj[from] {
		if a.to == to {
			if cost < a.cost {
				g.adj[from][i].cost = cost
			}
			return
		}
	}
	g.adj[from] = append(g.adj[from], arc{to: to, cost: cost})
}

// Has reports whether v is a vertex of the graph.
func (g *Graph) Has(v string) bool {
	_, ok := g.adj[v]
	return ok
}

// Vertices returns the vertices in first-seen order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.vertices...)
}

// Neighbors returns the vertices reachable from v in one step.
func (g *Graph) Neighbors(v string) []string {
	arcs := g.adj[v]
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}
	return out
}

// Cost returns the cost of the arc from -> to.
func (g *Graph) Cost(from, to string) (float64, bool) {
	for _, a := range g.adj[from] {
		if a.to == to {
			return a.cost, true
		}
	}
	return 0, false
}

// Edges lists every arc. Undirected graphs list each edge once per direction.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, v := range g.vertices {
		for _, a := range g.adj[v] {
			out = append(out, Edge{From: v, To: a.to, Cost: a.cost})
		}
	}
	return out
}

// Reversed returns a graph with every arc flipped. Undirected graphs are
// their own reverse; a copy is returned either way.
func (g *Graph) Reversed() *Graph {
	r := &Graph{
		Directed: g.Directed,
		adj:      make(map[string][]arc, len(g.adj)),
	}
	for _, v := range g.vertices {
		r.touch(v)
	}
	for _, v := range g.vertices {
		for _, a := range g.adj[v] {
			r.addArc(a.to, v, a.cost)
		}
	}
	return r
}

// GraphProblem searches a Graph between two vertices. An action is the name
// of the neighbour to move to.
type GraphProblem struct {
	statespace.GoalState[string]

	Graph *Graph
	Start string
}

var (
	_ statespace.Problem[string, string]  = (*GraphProblem)(nil)
	_ statespace.Inverter[string, string] = (*GraphProblem)(nil)
)

// NewGraphProblem checks that both endpoints exist in g.
func NewGraphProblem(g *Graph, start, goal string) (*GraphProblem, error) {
	for _, v := range []string{start, goal} {
		if !g.Has(v) {
			return nil, fmt.Errorf("%w: vertex %q not in graph", statespace.ErrInvalidArgument, v)
		}
	}
	return &GraphProblem{
		GoalState: statespace.GoalState[string]{Goal: goal},
		Graph:     g,
		Start:     start,
	}, nil
}

// Initial returns the start vertex.
func (p *GraphProblem) Initial() string { return p.Start }

// Actions returns the neighbours of v.
func (p *GraphProblem) Actions(v string) []string { return p.Graph.Neighbors(v) }

// Result moves to the named neighbour.
func (p *GraphProblem) Result(_ string, to string) string { return to }

// ActionCost returns the arc cost. Missing arcs cost +Inf.
func (p *GraphProblem) ActionCost(from, _ string, to string) float64 {
	if c, ok := p.Graph.Cost(from, to); ok {
		return c
	}
	return math.Inf(1)
}

// Invert maps the backward step from -> to onto the forward action at to,
// which is moving to from.
func (p *GraphProblem) Invert(from, _ string, _ string) string {
	return from
}

// Reversed returns the problem on the reversed graph from goal to start.
func (p *GraphProblem) Reversed() *GraphProblem {
	return &GraphProblem{
		GoalState: statespace.GoalState[string]{Goal: p.Start},
		Graph:     p.Graph.Reversed(),
		Start:     p.Goal,
	}
}

// TableHeuristic looks estimates up by vertex name. Missing vertices
// estimate zero.
func TableHeuristic(table map[string]float64) statespace.Heuristic[string] {
	return func(v string) float64 {
		return table[v]
	}
}
