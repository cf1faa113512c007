package statespace

import (
	"errors"
	"fmt"
)

// Sentinel errors for search outcomes.
var (
	// ErrNoSolution indicates the frontier was exhausted without reaching a goal.
	ErrNoSolution = errors.New("no solution")

	// ErrCutoff indicates depth-limited search pruned at least one node by depth.
	// A deeper limit might still reveal a solution.
	ErrCutoff = errors.New("depth limit cutoff")

	// ErrExhausted indicates a resource guard stopped the search before it finished.
	ErrExhausted = errors.New("search exhausted")
)

// Sentinel errors for invalid input.
var (
	// ErrMalformedProblem indicates a Problem violated a precondition of the strategy.
	ErrMalformedProblem = errors.New("malformed problem")

	// ErrInvalidArgument indicates a driver was called with an unusable argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExhaustedError describes why a search stopped early.
type ExhaustedError struct {
	// Strategy is the name of the driver that stopped.
	Strategy string
	// Reason is "max expansions", "deadline exceeded", "cancelled" or "max recursion".
	Reason string
	// Expanded is the number of nodes expanded before stopping.
	Expanded int
	// Cause is the context error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s after %d expansions: %s: %v", e.Strategy, ErrExhausted, e.Expanded, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s after %d expansions: %s", e.Strategy, ErrExhausted, e.Expanded, e.Reason)
}

// Is reports whether target is ErrExhausted.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExhaustedError) Unwrap() error {
	return e.Cause
}

// MalformedProblemError identifies the state and action that broke a precondition.
type MalformedProblemError struct {
	// State is the state being expanded.
	State any
	// Action is the offending action.
	Action any
	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *MalformedProblemError) Error() string {
	return fmt.Sprintf("%s: action %v in state %v: %s", ErrMalformedProblem, e.Action, e.State, e.Reason)
}

// Unwrap returns ErrMalformedProblem for errors.Is support.
func (e *MalformedProblemError) Unwrap() error {
	return ErrMalformedProblem
}

// isExpected reports whether err is an ordinary search outcome rather than a fault.
func isExpected(err error) bool {
	return errors.Is(err, ErrNoSolution) || errors.Is(err, ErrCutoff)
}

// outcome names err for metrics and logs.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoSolution):
		return "no_solution"
	case errors.Is(err, ErrCutoff):
		return "cutoff"
	case errors.Is(err, ErrExhausted):
		return "exhausted"
	case errors.Is(err, ErrMalformedProblem):
		return "malformed"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}
