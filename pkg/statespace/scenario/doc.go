// Package scenario provides concrete search problems and a loader for
// scenario files.
//
// Two problem families are built in: 4-connected grids with walls (Grid) and
// weighted graphs (GraphProblem). Graph edges can be listed inline in a
// scenario file or read from a SQLite database through GraphStore.
//
// A scenario file names the problem and the search settings:
//
//	name: grid-4x4
//	problem:
//	  kind: grid
//	  rows: 4
//	  cols: 4
//	  walls: [[1,1],[1,2],[2,1]]
//	  start: [0,0]
//	  goal: [3,3]
//	search:
//	  strategy: astar
//	  heuristic: manhattan
//
// Load the file and solve it with the named strategy:
//
//	sc, err := scenario.Load(ctx, "grid.yaml")
//	if err != nil {
//	    return err
//	}
//	result, err := sc.Solve(ctx)
package scenario
