package mdp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/randalmurphal/statespace/pkg/statespace"
	"github.com/randalmurphal/statespace/pkg/statespace/observability"
)

// ErrNotConverged indicates value iteration hit its iteration cap.
var ErrNotConverged = errors.New("value iteration did not converge")

// Transition is one outcome of taking an action: the next state and its
// probability. Probabilities for an action are not required to sum to 1.
type Transition[S comparable] struct {
	Next S
	Prob float64
}

// MDP is a finite Markov decision process.
type MDP[S comparable, A any] struct {
	// States lists every state. Iteration follows this order.
	States []S
	// Actions returns the actions available in s. None means s is terminal.
	Actions func(s S) []A
	// Transitions returns the outcome distribution of a in s.
	Transitions func(s S, a A) []Transition[S]
	// Reward returns R(s, a, next).
	Reward func(s S, a A, next S) float64
	// Gamma is the discount factor, in (0, 1].
	Gamma float64
}

// Validate checks the MDP's functions and discount factor.
func (m *MDP[S, A]) Validate() error {
	if m.Actions == nil || m.Transitions == nil || m.Reward == nil {
		return fmt.Errorf("%w: mdp requires Actions, Transitions and Reward", statespace.ErrInvalidArgument)
	}
	if !(m.Gamma > 0 && m.Gamma <= 1) {
		return fmt.Errorf("%w: gamma %v outside (0, 1]", statespace.ErrInvalidArgument, m.Gamma)
	}
	return nil
}

// QValue returns the expected utility of taking a in s under utilities u:
// sum over outcomes of P(s'|s,a) * (R(s,a,s') + gamma*U(s')).
// States missing from u count as zero.
func QValue[S comparable, A any](m *MDP[S, A], s S, a A, u map[S]float64) float64 {
	total := 0.0
	for _, t := range m.Transitions(s, a) {
		total += t.Prob * (m.Reward(s, a, t.Next) + m.Gamma*u[t.Next])
	}
	return total
}

// ValueIteration computes state utilities by Bellman updates until the
// largest change in a sweep is at most eps*(1-gamma)/gamma, or eps itself
// when gamma is 1.
//
// When the iteration cap is reached the latest utilities are returned along
// with an error wrapping ErrNotConverged.
func ValueIteration[S comparable, A any](ctx context.Context, m *MDP[S, A], eps float64, opts ...Option) (map[S]float64, error) {
	if m == nil {
		panic("mdp: ValueIteration called with nil MDP")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !(eps > 0) {
		return nil, fmt.Errorf("%w: eps must be positive, got %v", statespace.ErrInvalidArgument, eps)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	threshold := eps
	if m.Gamma < 1 {
		threshold = eps * (1 - m.Gamma) / m.Gamma
	}

	elapsed := observability.TimedOperation()
	u := make(map[S]float64, len(m.States))
	next := make(map[S]float64, len(m.States))
	for _, s := range m.States {
		u[s] = 0
		next[s] = 0
	}

	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("value iteration stopped after %d sweeps: %w", iteration-1, err)
		}

		u, next = next, u
		delta := 0.0
		for _, s := range m.States {
			actions := m.Actions(s)
			if len(actions) == 0 {
				next[s] = u[s]
				continue
			}
			best := math.Inf(-1)
			for _, a := range actions {
				if q := QValue(m, s, a, u); q > best {
					best = q
				}
			}
			next[s] = best
			delta = math.Max(delta, math.Abs(best-u[s]))
		}

		observability.LogSweep(cfg.logger, iteration, delta)
		if cfg.observer != nil {
			cfg.observer(iteration, delta)
		}

		if delta <= threshold {
			observability.LogConverged(cfg.logger, iteration, delta, elapsed())
			return next, nil
		}
		if iteration >= cfg.maxIterations {
			return next, fmt.Errorf("%w: %d sweeps, last delta %g", ErrNotConverged, iteration, delta)
		}
	}
}

// ExtractPolicy returns the greedy action for every non-terminal state.
// Among actions with equal Q-values the first in action order wins.
func ExtractPolicy[S comparable, A any](m *MDP[S, A], u map[S]float64) map[S]A {
	policy := make(map[S]A, len(m.States))
	for _, s := range m.States {
		actions := m.Actions(s)
		if len(actions) == 0 {
			continue
		}
		best, bestQ := actions[0], math.Inf(-1)
		for _, a := range actions {
			if q := QValue(m, s, a, u); q > bestQ {
				best, bestQ = a, q
			}
		}
		policy[s] = best
	}
	return policy
}
