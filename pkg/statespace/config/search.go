package config

import (
	"fmt"
	"time"

	"github.com/randalmurphal/statespace/pkg/statespace"
)

// Search holds the settings of a scenario's search section.
type Search struct {
	Strategy      string
	Heuristic     string
	MaxExpansions int
	Timeout       time.Duration
	DepthLimit    int
	MaxDepth      int
	Strict        bool
}

// DefaultStrategy is used when a scenario names none.
const DefaultStrategy = statespace.StrategyAStar

// ParseSearch reads search settings, applying defaults for missing keys.
func ParseSearch(c Config) (Search, error) {
	s := Search{
		Strategy:      c.String("strategy", DefaultStrategy),
		Heuristic:     c.String("heuristic", ""),
		MaxExpansions: c.Int("max_expansions", 0),
		Timeout:       c.Duration("timeout", 0),
		DepthLimit:    c.Int("depth_limit", statespace.DefaultMaxDepth),
		MaxDepth:      c.Int("max_depth", statespace.DefaultMaxDepth),
		Strict:        c.Bool("strict", false),
	}
	switch {
	case s.MaxExpansions < 0:
		return Search{}, fmt.Errorf("%w: max_expansions must not be negative", statespace.ErrInvalidArgument)
	case s.Timeout < 0:
		return Search{}, fmt.Errorf("%w: timeout must not be negative", statespace.ErrInvalidArgument)
	case s.DepthLimit < 0 || s.MaxDepth < 0:
		return Search{}, fmt.Errorf("%w: depth settings must not be negative", statespace.ErrInvalidArgument)
	}
	return s, nil
}

// RunOptions converts the settings into statespace run options.
func (s Search) RunOptions() []statespace.RunOption {
	var opts []statespace.RunOption
	if s.MaxExpansions > 0 {
		opts = append(opts, statespace.WithMaxExpansions(s.MaxExpansions))
	}
	if s.Timeout > 0 {
		opts = append(opts, statespace.WithTimeout(s.Timeout))
	}
	if s.Strict {
		opts = append(opts, statespace.WithStrictValidation())
	}
	return opts
}
