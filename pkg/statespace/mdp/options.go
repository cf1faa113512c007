package mdp

import "log/slog"

// DefaultMaxIterations caps the number of value-iteration sweeps.
const DefaultMaxIterations = 10000

type config struct {
	maxIterations int
	logger        *slog.Logger
	observer      func(iteration int, delta float64)
}

func defaultConfig() config {
	return config{maxIterations: DefaultMaxIterations}
}

// Option configures ValueIteration.
type Option func(*config)

// WithMaxIterations caps the number of sweeps.
// Default: DefaultMaxIterations
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithLogger sets the logger for sweep and convergence events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDeltaObserver registers fn to receive the largest utility change of
// every sweep.
func WithDeltaObserver(fn func(iteration int, delta float64)) Option {
	return func(c *config) {
		c.observer = fn
	}
}
