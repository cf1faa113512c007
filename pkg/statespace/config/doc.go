/*
Package config reads scenario and search settings from decoded YAML or JSON.

# Overview

Config wraps a map[string]any and offers typed accessors that return a
default when a key is missing or holds a value of the wrong type. YAML and
JSON decode numbers differently (int versus float64); the numeric accessors
accept either.

	cfg, err := config.FromFile("maze.yaml")
	if err != nil {
	    return err
	}
	problem := cfg.Sub("problem")
	rows := problem.Int("rows", 0)
	start, ok := problem.IntPair("start")

# Search Settings

The "search" section of a scenario maps onto statespace run options:

	search:
	  strategy: astar
	  heuristic: manhattan
	  max_expansions: 10000
	  timeout: 2s
	  depth_limit: 12
	  max_depth: 50
	  strict: true

	s, err := config.ParseSearch(cfg.Sub("search"))
	node, err := solve(ctx, req, s.RunOptions()...)

Config values are not modified after creation and are safe for concurrent
reads.
*/
package config
