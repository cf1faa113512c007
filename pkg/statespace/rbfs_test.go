package statespace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecursiveBestFirstSearch_Grid tests RBFS on the 4x4 walled grid.
func TestRecursiveBestFirstSearch_Grid(t *testing.T) {
	g := grid4()
	node, err := RecursiveBestFirstSearch(testCtx(), g, manhattan(g.Goal))
	require.NoError(t, err)

	assert.Equal(t, 6.0, node.PathCost)
	assert.True(t, isValidGridPath(g, ExtractStates(node)))
}

// TestRecursiveBestFirstSearch_MatchesAStar tests cost equality with A* under admissible heuristics.
func TestRecursiveBestFirstSearch_MatchesAStar(t *testing.T) {
	t.Run("6x6 grid", func(t *testing.T) {
		g := grid6()
		a, err := AStarSearch(testCtx(), g, manhattan(g.Goal))
		require.NoError(t, err)
		r, err := RecursiveBestFirstSearch(testCtx(), g, manhattan(g.Goal))
		require.NoError(t, err)
		assert.Equal(t, a.PathCost, r.PathCost)
	})

	t.Run("weighted sample graph", func(t *testing.T) {
		r, err := RecursiveBestFirstSearch(testCtx(), ucsGraph(), ZeroHeuristic[string])
		require.NoError(t, err)
		assert.Equal(t, 4.0, r.PathCost)
	})

	t.Run("random graphs", func(t *testing.T) {
		const n = 6
		for seed := uint64(1); seed <= 5; seed++ {
			g := randomGraph(seed, n, 0.4, false)
			dist := floydWarshall(g, n)
			for j := 1; j < n; j++ {
				p := g.with(nodeName(0), nodeName(j))
				r, err := RecursiveBestFirstSearch(testCtx(), p, ZeroHeuristic[string])
				if math.IsInf(dist[0][j], 1) {
					require.ErrorIs(t, err, ErrNoSolution)
					continue
				}
				require.NoError(t, err, "seed %d a->%s", seed, nodeName(j))
				assert.Equal(t, dist[0][j], r.PathCost, "seed %d a->%s", seed, nodeName(j))
			}
		}
	})
}

// TestRecursiveBestFirstSearch_NoSolution tests failure at the root bound.
func TestRecursiveBestFirstSearch_NoSolution(t *testing.T) {
	_, err := RecursiveBestFirstSearch(testCtx(), sampleTree().with("C", "G"), ZeroHeuristic[string])
	require.ErrorIs(t, err, ErrNoSolution)

	g := newTestGrid(3, 3, cell{0, 0}, cell{2, 2}, cell{1, 2}, cell{2, 1})
	_, err = RecursiveBestFirstSearch(testCtx(), g, manhattan(g.Goal))
	require.ErrorIs(t, err, ErrNoSolution)
}

// TestRecursiveBestFirstSearch_MaxRecursion tests the recursion guard.
func TestRecursiveBestFirstSearch_MaxRecursion(t *testing.T) {
	g := grid6()
	_, err := RecursiveBestFirstSearch(testCtx(), g, manhattan(g.Goal), WithMaxRecursion(2))
	require.ErrorIs(t, err, ErrExhausted)

	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "max recursion", ee.Reason)
	assert.Equal(t, "rbfs", ee.Strategy)
}
