// Package simplex: the public entry points.

package simplex

import (
	"github.com/deyme17/LPSolver/lp"
	"github.com/deyme17/LPSolver/standardform"
	"github.com/deyme17/LPSolver/tableau"
)

// Report bundles the outcome of a solve with the diagnostics the
// presentation layer renders: the terminal phase-machine state, the pivot
// count, and a display-ready snapshot of the final tableau.
type Report struct {
	Result     lp.Result        // terminal outcome (status, value, assignment)
	State      State            // Optimal, Infeasible or Unbounded
	Iterations int              // pivots performed across both phases
	Final      tableau.Snapshot // the terminal tableau, for display
}

// Solve solves the linear program p and returns its terminal Result.
//
// Returns:
//
//   - a Result with StatusOptimal plus value and assignment, or with
//     StatusInfeasible / StatusUnbounded and nothing else; both are
//     legitimate outcomes for valid inputs, not errors.
//   - lp.ErrMalformedProblem (wrapped) for structurally invalid input,
//     detected before any tableau work.
//   - ErrIterationLimit / tableau.ErrDegeneratePivot / ErrInternalFault
//     for solver faults; no partial result accompanies a fault.
//
// A solve owns all of its mutable state, so concurrent calls require no
// locking, and a failed call leaves no residue; retrying is idempotent.
func Solve(p *lp.Problem, opts ...Option) (lp.Result, error) {
	rep, err := SolveReport(p, opts...)
	if err != nil {
		return lp.Result{}, err
	}

	return rep.Result, nil
}

// SolveReport is Solve plus diagnostics: the terminal state, the pivot
// count, and the final tableau snapshot.
func SolveReport(p *lp.Problem, opts ...Option) (*Report, error) {
	// 1) Gather options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Normalize. Build validates first, so malformed input fails here
	//    before any numeric work.
	sf, err := standardform.Build(p)
	if err != nil {
		return nil, err
	}

	// 3) Build the tableau and drive the phase machine to a terminal state.
	r, err := newRunner(sf, o)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	// 4) Extract the result in the caller's coordinates.
	return &Report{
		Result:     r.extract(),
		State:      r.state,
		Iterations: r.iterations,
		Final:      r.tab.Snapshot(),
	}, nil
}
