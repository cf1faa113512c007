package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/statespace/pkg/statespace"
	"github.com/randalmurphal/statespace/pkg/statespace/scenario"
)

// solveOptions holds options for the solve command.
type solveOptions struct {
	file          string
	strategy      string
	maxExpansions int
	timeout       time.Duration
	json          bool
	verbose       bool
}

func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a scenario file",
		Long: `Load a scenario file and solve it with the configured strategy.

Flags override the scenario's search section.

Examples:
  # Solve with the scenario's own settings
  statespace solve -f maze.yaml

  # Try another strategy with an expansion budget
  statespace solve -f romania.yaml --strategy ucs --max-expansions 500

  # Machine-readable output
  statespace solve -f maze.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to scenario file (required)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Search strategy (see 'statespace strategies')")
	cmd.Flags().IntVar(&opts.maxExpansions, "max-expansions", 0, "Maximum node expansions (0 for unlimited)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Search timeout (e.g. 500ms, 2s)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log search progress to stderr")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *App) solve(cmd *cobra.Command, opts *solveOptions) error {
	ctx := cmd.Context()

	sc, err := scenario.Load(ctx, opts.file)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		sc.Search.Strategy = opts.strategy
	}
	if flags.Changed("max-expansions") {
		sc.Search.MaxExpansions = opts.maxExpansions
	}
	if flags.Changed("timeout") {
		sc.Search.Timeout = opts.timeout
	}

	var runOpts []statespace.RunOption
	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		runOpts = append(runOpts, statespace.WithLogger(logger))
	}

	result, err := sc.Solve(ctx, runOpts...)
	if err != nil {
		if result != nil && !opts.json {
			a.printStats(result)
		}
		return fmt.Errorf("%s: %w", sc.Search.Strategy, err)
	}

	if opts.json {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Scenario != "" {
		_, _ = fmt.Fprintf(a.stdout, "Scenario:  %s\n", result.Scenario)
	}
	_, _ = fmt.Fprintf(a.stdout, "Strategy:  %s\n", result.Strategy)
	_, _ = fmt.Fprintf(a.stdout, "Cost:      %g\n", result.Cost)
	_, _ = fmt.Fprintf(a.stdout, "Depth:     %d\n", result.Depth)
	_, _ = fmt.Fprintf(a.stdout, "Actions:   %s\n", strings.Join(result.Actions, " "))
	_, _ = fmt.Fprintf(a.stdout, "Path:      %s\n", strings.Join(result.States, " -> "))
	a.printStats(result)
	return nil
}

func (a *App) printStats(r *scenario.Result) {
	_, _ = fmt.Fprintf(a.stdout, "Expanded:  %d\n", r.Stats.Expanded)
	_, _ = fmt.Fprintf(a.stdout, "Generated: %d\n", r.Stats.Generated)
	_, _ = fmt.Fprintf(a.stdout, "Frontier:  %d (peak)\n", r.Stats.PeakFrontier)
	if r.Stats.Iterations > 0 {
		_, _ = fmt.Fprintf(a.stdout, "Passes:    %d\n", r.Stats.Iterations)
	}
}
