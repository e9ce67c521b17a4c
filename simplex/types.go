// Package simplex: states, sentinel errors, and functional configuration.

package simplex

import (
	"errors"

	"github.com/deyme17/LPSolver/tableau"
)

// Sentinel errors returned by the solver. Terminal algorithm outcomes
// (optimal / infeasible / unbounded) are NOT errors; these two mark solver
// faults that abort the solve.
var (
	// ErrIterationLimit indicates the pivot loop failed to reach a
	// terminal state within the iteration cap. This is reported as a
	// fault, never silently converted into a plausible-looking result.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrInternalFault indicates a broken internal invariant, e.g. phase 1
	// reporting unboundedness, which its artificial-sum objective
	// (bounded below by zero) makes impossible.
	ErrInternalFault = errors.New("simplex: internal solver fault")
)

// State is the phase-machine state of a solve.
type State int

const (
	// Phase1Running: minimizing the artificial-variable sum to construct
	// an initial basic feasible solution.
	Phase1Running State = iota

	// Phase1Done: a basic feasible solution exists; artificials retired.
	Phase1Done

	// Phase2Running: optimizing the true objective.
	Phase2Running

	// Optimal: terminal state, an optimal basic feasible solution was found.
	Optimal

	// Infeasible: terminal state, the feasible region is empty.
	Infeasible

	// Unbounded: terminal state, the objective improves without limit.
	Unbounded
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Phase1Running:
		return "PHASE1_RUNNING"
	case Phase1Done:
		return "PHASE1_DONE"
	case Phase2Running:
		return "PHASE2_RUNNING"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	default:
		return "STATE(unknown)"
	}
}

// Numeric policy defaults. Each is a named constant so tests can probe
// near-boundary behavior deterministically.
const (
	// DefaultTolerance bounds what counts as "negative" in the entering
	// rule, "positive" in the ratio test, and "zero" in the phase-1
	// feasibility check and constraint-satisfaction checks.
	DefaultTolerance = 1e-7

	// DefaultIterationFactor sets the hard iteration cap to
	// DefaultIterationFactor·(m+n) when WithMaxIterations is not given.
	// The Bland-style tie-break already rules out exact cycling; the cap
	// guards against residual cycling risk from floating-point tie noise.
	DefaultIterationFactor = 10
)

// options holds the solver configuration. Fields are unexported; public
// APIs consume ...Option.
type options struct {
	tol      float64 // reduced-cost / ratio / feasibility tolerance
	pivotEps float64 // zero-pivot threshold, forwarded to the tableau
	maxIter  int     // absolute iteration cap; 0 means factor·(m+n)
}

// Option is a functional option for configuring Solve.
type Option func(*options)

// WithTolerance overrides the optimality/feasibility tolerance.
// Must be positive; non-positive values are a programmer error and panic.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("simplex: tolerance must be positive")
	}
	return func(o *options) {
		o.tol = tol
	}
}

// WithPivotEpsilon overrides the zero-pivot detection threshold used by
// the underlying tableau. Must be positive; panics otherwise.
func WithPivotEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("simplex: pivot epsilon must be positive")
	}
	return func(o *options) {
		o.pivotEps = eps
	}
}

// WithMaxIterations replaces the default 10·(m+n) cap with an absolute
// pivot budget. Must be positive; panics otherwise.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("simplex: iteration cap must be positive")
	}
	return func(o *options) {
		o.maxIter = n
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		tol:      DefaultTolerance,
		pivotEps: tableau.DefaultEpsilon,
		maxIter:  0, // resolved to DefaultIterationFactor·(m+n) at runner setup
	}
}
