package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/statespace/pkg/statespace"
	"github.com/randalmurphal/statespace/pkg/statespace/scenario"
)

const gridScenario = `
name: maze
problem:
  kind: grid
  rows: 4
  cols: 4
  walls: [[1, 1], [1, 2], [2, 1]]
  start: [0, 0]
  goal: [3, 3]
search:
  strategy: astar
  heuristic: manhattan
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestApp_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "statespace version")
}

func TestApp_Help(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "solve")
	assert.Contains(t, out, "strategies")
}

func TestApp_Strategies(t *testing.T) {
	out, _, err := run(t, "strategies")
	require.NoError(t, err)
	for _, name := range []string{
		statespace.StrategyAStar, statespace.StrategyBFS, statespace.StrategyBidirectional,
		statespace.StrategyIDS, statespace.StrategyRBFS, statespace.StrategyUCS,
	} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestApp_Solve(t *testing.T) {
	path := writeScenario(t, gridScenario)

	t.Run("text output", func(t *testing.T) {
		out, _, err := run(t, "solve", "-f", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Scenario:  maze")
		assert.Contains(t, out, "Strategy:  astar")
		assert.Contains(t, out, "Cost:      6")
		assert.Contains(t, out, "Path:      (0,0) -> ")
	})

	t.Run("json output with strategy override", func(t *testing.T) {
		out, _, err := run(t, "solve", "-f", path, "--strategy", "bfs", "--json")
		require.NoError(t, err)

		var res scenario.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "bfs", res.Strategy)
		assert.Equal(t, 6.0, res.Cost)
		assert.Len(t, res.Actions, 6)
		assert.Positive(t, res.Stats.Expanded)
	})

	t.Run("verbose logs to stderr", func(t *testing.T) {
		_, errOut, err := run(t, "solve", "-f", path, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, errOut, "search starting")
		assert.Contains(t, errOut, "search completed")
	})
}

func TestApp_SolveErrors(t *testing.T) {
	path := writeScenario(t, gridScenario)

	t.Run("file flag required", func(t *testing.T) {
		_, _, err := run(t, "solve")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "solve", "-f", filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorContains(t, err, "failed to load scenario")
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, _, err := run(t, "solve", "-f", path, "--strategy", "nope")
		assert.ErrorIs(t, err, statespace.ErrInvalidArgument)
	})

	t.Run("expansion budget", func(t *testing.T) {
		out, _, err := run(t, "solve", "-f", path, "--strategy", "ucs", "--max-expansions", "1")
		require.Error(t, err)
		var exhausted *statespace.ExhaustedError
		assert.True(t, errors.As(err, &exhausted))
		assert.Contains(t, out, "Expanded:  1")
	})
}
