package scenario

import (
	"fmt"
	"math"

	"github.com/randalmurphal/statespace/pkg/statespace"
)

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a grid action.
type Move string

// Moves in the order Grid.Actions returns them.
const (
	Up    Move = "U"
	Down  Move = "D"
	Left  Move = "L"
	Right Move = "R"
)

var moveOrder = [...]Move{Up, Down, Left, Right}

func (m Move) delta() (int, int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return m
}

// Grid is a 4-connected grid with blocked cells. Every move costs 1.
type Grid struct {
	statespace.UnitCost[Cell, Move]

	Rows, Cols  int
	Start, Goal Cell
	walls       map[Cell]struct{}
}

var (
	_ statespace.Problem[Cell, Move]  = (*Grid)(nil)
	_ statespace.Inverter[Cell, Move] = (*Grid)(nil)
)

// NewGrid validates the dimensions and endpoints and builds a Grid.
func NewGrid(rows, cols int, walls []Cell, start, goal Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid must have positive dimensions, got %dx%d",
			statespace.ErrInvalidArgument, rows, cols)
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Start: start,
		Goal:  goal,
		walls: make(map[Cell]struct{}, len(walls)),
	}
	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v outside %dx%d grid",
				statespace.ErrInvalidArgument, w, rows, cols)
		}
		g.walls[w] = struct{}{}
	}
	if !g.Open(start) {
		return nil, fmt.Errorf("%w: start %v is blocked or outside the grid", statespace.ErrInvalidArgument, start)
	}
	if !g.Open(goal) {
		return nil, fmt.Errorf("%w: goal %v is blocked or outside the grid", statespace.ErrInvalidArgument, goal)
	}
	return g, nil
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Open reports whether c is inside the grid and not a wall.
func (g *Grid) Open(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	_, blocked := g.walls[c]
	return !blocked
}

// Initial returns the start cell.
func (g *Grid) Initial() Cell { return g.Start }

// IsGoal reports whether c is the goal cell.
func (g *Grid) IsGoal(c Cell) bool { return c == g.Goal }

// Actions returns the moves into open neighbouring cells, in U, D, L, R order.
func (g *Grid) Actions(c Cell) []Move {
	moves := make([]Move, 0, len(moveOrder))
	for _, m := range moveOrder {
		if g.Open(g.Result(c, m)) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Result applies m to c.
func (g *Grid) Result(c Cell, m Move) Cell {
	dr, dc := m.delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Invert maps a backward move onto the forward move that undoes it.
func (g *Grid) Invert(_ Cell, m Move, _ Cell) Move {
	return m.Opposite()
}

// Reversed returns the same grid searched from the goal towards the start.
func (g *Grid) Reversed() *Grid {
	r := *g
	r.Start, r.Goal = g.Goal, g.Start
	return &r
}

// Manhattan returns the Manhattan-distance heuristic towards goal. It is
// admissible and consistent for unit-cost 4-connected grids.
func Manhattan(goal Cell) statespace.Heuristic[Cell] {
	return func(c Cell) float64 {
		return math.Abs(float64(c.Row-goal.Row)) + math.Abs(float64(c.Col-goal.Col))
	}
}
