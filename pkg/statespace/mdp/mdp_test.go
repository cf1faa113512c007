package mdp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/statespace/pkg/statespace"
)

// pos is an (x, y) grid position with (1, 1) at the bottom left.
type pos struct{ x, y int }

var dirs = map[string]pos{"U": {0, 1}, "D": {0, -1}, "L": {-1, 0}, "R": {1, 0}}

var perpendicular = map[string][2]string{
	"U": {"L", "R"},
	"D": {"L", "R"},
	"L": {"U", "D"},
	"R": {"U", "D"},
}

// gridWorld builds the 4x3 world: wall at (2,2), +1 exit at (4,3), -1 exit
// at (4,2). The intended move succeeds with probability 0.8 and slips to
// either side with 0.1; bumping into a wall or edge stays put.
func gridWorld(gamma, living float64) *MDP[pos, string] {
	wall := pos{2, 2}
	terminals := map[pos]float64{{4, 3}: 1, {4, 2}: -1}

	var states []pos
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 4; x++ {
			if p := (pos{x, y}); p != wall {
				states = append(states, p)
			}
		}
	}

	move := func(s pos, a string) pos {
		d := dirs[a]
		n := pos{s.x + d.x, s.y + d.y}
		if n.x < 1 || n.x > 4 || n.y < 1 || n.y > 3 || n == wall {
			return s
		}
		return n
	}

	return &MDP[pos, string]{
		States: states,
		Actions: func(s pos) []string {
			if _, ok := terminals[s]; ok {
				return nil
			}
			return []string{"U", "D", "L", "R"}
		},
		Transitions: func(s pos, a string) []Transition[pos] {
			side := perpendicular[a]
			return []Transition[pos]{
				{move(s, a), 0.8},
				{move(s, side[0]), 0.1},
				{move(s, side[1]), 0.1},
			}
		},
		Reward: func(_ pos, _ string, next pos) float64 {
			return living + terminals[next]
		},
		Gamma: gamma,
	}
}

// TestValueIteration_GridWorld tests utilities and policy against the known 4x3 solution.
func TestValueIteration_GridWorld(t *testing.T) {
	world := gridWorld(1, -0.04)

	u, err := ValueIteration(context.Background(), world, 1e-6)
	require.NoError(t, err)

	want := map[pos]float64{
		{1, 1}: 0.705, {2, 1}: 0.655, {3, 1}: 0.611, {4, 1}: 0.388,
		{1, 2}: 0.762, {3, 2}: 0.660,
		{1, 3}: 0.812, {2, 3}: 0.868, {3, 3}: 0.918,
	}
	for s, v := range want {
		assert.InDelta(t, v, u[s], 0.001, "utility of %v", s)
	}
	assert.Equal(t, 0.0, u[pos{4, 3}], "terminal utility is held fixed")
	assert.Equal(t, 0.0, u[pos{4, 2}])

	policy := ExtractPolicy(world, u)
	assert.Equal(t, map[pos]string{
		{1, 1}: "U", {2, 1}: "L", {3, 1}: "L", {4, 1}: "L",
		{1, 2}: "U", {3, 2}: "U",
		{1, 3}: "R", {2, 3}: "R", {3, 3}: "R",
	}, policy)
}

// TestValueIteration_DeltaNonIncreasing tests the contraction of successive sweeps.
func TestValueIteration_DeltaNonIncreasing(t *testing.T) {
	var deltas []float64
	_, err := ValueIteration(context.Background(), gridWorld(0.9, -0.04), 1e-4,
		WithDeltaObserver(func(_ int, d float64) { deltas = append(deltas, d) }))
	require.NoError(t, err)

	require.Greater(t, len(deltas), 2)
	for i := 1; i < len(deltas); i++ {
		assert.LessOrEqual(t, deltas[i], deltas[i-1]+1e-12, "sweep %d", i+1)
	}
	assert.LessOrEqual(t, deltas[len(deltas)-1], 1e-4*(1-0.9)/0.9)
}

// TestValueIteration_UndiscountedUsesEpsilon tests that with gamma 1 the loop
// stops once a sweep changes utilities by at most eps.
func TestValueIteration_UndiscountedUsesEpsilon(t *testing.T) {
	// U(a) follows 0.5, 0.75, 0.875, ... so deltas halve every sweep.
	m := &MDP[string, string]{
		States: []string{"a", "b"},
		Actions: func(s string) []string {
			if s == "b" {
				return nil
			}
			return []string{"stay"}
		},
		Transitions: func(string, string) []Transition[string] {
			return []Transition[string]{{"a", 0.5}, {"b", 0.5}}
		},
		Reward: func(_, _, next string) float64 {
			if next == "a" {
				return 1
			}
			return 0
		},
		Gamma: 1,
	}

	var deltas []float64
	u, err := ValueIteration(context.Background(), m, 0.3,
		WithDeltaObserver(func(_ int, d float64) { deltas = append(deltas, d) }))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.25}, deltas)
	assert.Equal(t, map[string]float64{"a": 0.75, "b": 0}, u)
}

// TestValueIteration_NotConverged tests the iteration cap.
func TestValueIteration_NotConverged(t *testing.T) {
	u, err := ValueIteration(context.Background(), gridWorld(0.99, -0.04), 1e-9, WithMaxIterations(3))
	require.ErrorIs(t, err, ErrNotConverged)
	assert.Contains(t, err.Error(), "3 sweeps")
	assert.Len(t, u, 11, "latest utilities are returned")
}

// TestValueIteration_InvalidArguments tests input validation.
func TestValueIteration_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		gamma float64
		eps   float64
	}{
		{"zero gamma", 0, 0.1},
		{"gamma above one", 1.5, 0.1},
		{"zero eps", 0.9, 0},
		{"negative eps", 0.9, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueIteration(context.Background(), gridWorld(tt.gamma, -0.04), tt.eps)
			require.ErrorIs(t, err, statespace.ErrInvalidArgument)
		})
	}

	t.Run("missing functions", func(t *testing.T) {
		_, err := ValueIteration(context.Background(), &MDP[int, int]{States: []int{1}, Gamma: 0.9}, 0.1)
		require.ErrorIs(t, err, statespace.ErrInvalidArgument)
	})
}

// TestValueIteration_Cancelled tests context cancellation between sweeps.
func TestValueIteration_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ValueIteration(ctx, gridWorld(0.9, -0.04), 1e-4)
	require.True(t, errors.Is(err, context.Canceled))
}

// TestQValue_MissingStatesCountAsZero tests outcomes outside the state list.
func TestQValue_MissingStatesCountAsZero(t *testing.T) {
	m := &MDP[string, string]{
		States:  []string{"a"},
		Actions: func(string) []string { return []string{"go"} },
		Transitions: func(string, string) []Transition[string] {
			return []Transition[string]{{"a", 0.5}, {"elsewhere", 0.5}}
		},
		Reward: func(_, _, next string) float64 {
			if next == "elsewhere" {
				return 2
			}
			return 0
		},
		Gamma: 0.5,
	}

	u := map[string]float64{"a": 4}
	// 0.5*(0 + 0.5*4) + 0.5*(2 + 0.5*0)
	assert.Equal(t, 2.0, QValue(m, "a", "go", u))
}

// TestExtractPolicy_FirstActionWinsTies tests tie-breaking by action order.
func TestExtractPolicy_FirstActionWinsTies(t *testing.T) {
	m := &MDP[string, string]{
		States:  []string{"s", "end"},
		Actions: func(s string) []string {
			if s == "end" {
				return nil
			}
			return []string{"left", "right"}
		},
		Transitions: func(string, string) []Transition[string] {
			return []Transition[string]{{"end", 1}}
		},
		Reward: func(string, string, string) float64 { return 1 },
		Gamma:  0.9,
	}

	u, err := ValueIteration(context.Background(), m, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, u["s"])

	policy := ExtractPolicy(m, u)
	assert.Equal(t, map[string]string{"s": "left"}, policy)
}
