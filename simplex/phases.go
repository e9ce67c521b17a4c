// Package simplex: the phase machine.
// A runner owns all mutable state of one solve (the tableau, the current
// State, and the iteration budget) and drives phase 1 and phase 2 by
// looping the pivot engine.

package simplex

import (
	"fmt"
	"math"

	"github.com/deyme17/LPSolver/standardform"
	"github.com/deyme17/LPSolver/tableau"
)

// runner holds the mutable state for a single solve execution.
type runner struct {
	sf         *standardform.StandardForm // normalized problem; read-only here
	tab        *tableau.Tableau           // live numeric state
	opts       options                    // numeric policy
	state      State                      // phase-machine state
	iterations int                        // pivots performed so far
	maxIter    int                        // hard pivot budget
}

// newRunner builds the initial tableau from the standard form and resolves
// the iteration cap.
func newRunner(sf *standardform.StandardForm, opts options) (*runner, error) {
	tab, err := tableau.New(sf.A, sf.B, sf.C, sf.Basis, tableau.WithEpsilon(opts.pivotEps))
	if err != nil {
		// Build output violating tableau preconditions is a library bug.
		return nil, fmt.Errorf("%w: %v", ErrInternalFault, err)
	}

	maxIter := opts.maxIter
	if maxIter == 0 {
		maxIter = DefaultIterationFactor * (sf.NumRows() + sf.NumCols())
	}

	return &runner{sf: sf, tab: tab, opts: opts, maxIter: maxIter}, nil
}

// run drives the phase machine to a terminal state (Optimal, Infeasible,
// Unbounded) or fails with a solver fault.
func (r *runner) run() error {
	// 1) Phase 1 is needed only when artificials exist; with a pure slack
	//    basis the initial tableau is already basic feasible.
	if r.sf.NumArtificial > 0 {
		if err := r.phase1(); err != nil {
			return err
		}
		if r.state == Infeasible {
			return nil
		}
	}

	// 2) Phase 2: optimize the true objective from the feasible basis.
	return r.phase2()
}

// phase1 minimizes the sum of artificial variables. A zero optimum (within
// tolerance) proves a basic feasible solution exists; a positive one
// proves the feasible region empty.
func (r *runner) phase1() error {
	r.state = Phase1Running

	// 1) Install the feasibility objective: cost 1 on artificials, 0
	//    elsewhere, then price out the artificial basis rows.
	cost := make([]float64, r.tab.N())
	for j, kind := range r.sf.Kinds {
		if kind == standardform.Artificial {
			cost[j] = 1
		}
	}
	r.tab.SetObjective(cost)
	r.tab.PriceOut()

	// 2) Loop the engine to phase-1 optimality.
	outcome, err := r.loop()
	if err != nil {
		return err
	}
	if outcome == stepUnbounded {
		// The artificial sum is bounded below by zero; unboundedness here
		// is impossible for a correct engine.
		return fmt.Errorf("%w: phase 1 reported unbounded", ErrInternalFault)
	}

	// 3) Feasibility check: a positive residual artificial sum means no
	//    feasible point exists.
	if r.tab.ObjectiveValue() > r.opts.tol {
		r.state = Infeasible

		return nil
	}

	// 4) Retire the artificials: they may never re-enter the basis.
	for j, kind := range r.sf.Kinds {
		if kind == standardform.Artificial {
			r.tab.Block(j)
		}
	}

	// 5) Any artificial still basic sits at level ~0 (degenerate). Pivot
	//    each one out through a usable column so phase 2 starts from a
	//    basis of real variables wherever possible.
	if err = r.evictBasicArtificials(); err != nil {
		return err
	}
	r.state = Phase1Done

	return nil
}

// evictBasicArtificials replaces every artificial that is still basic with
// a non-blocked column having a nonzero entry in the same row (a
// zero-ratio pivot: the basic value is ~0, so feasibility is preserved).
// A row offering no such column is linearly dependent on the others,
// a redundant constraint, and its artificial stays pinned at zero: with
// every other entry of the row eliminated, no later pivot can move it.
func (r *runner) evictBasicArtificials() error {
	for i := 0; i < r.tab.M(); i++ {
		if r.sf.Kinds[r.tab.BasisAt(i)] != standardform.Artificial {
			continue
		}
		for j := 0; j < r.tab.N(); j++ {
			if r.tab.Blocked(j) {
				continue
			}
			if math.Abs(r.tab.At(i, j)) <= r.opts.tol {
				continue
			}
			if err := r.tab.Pivot(i, j); err != nil {
				return err
			}

			break
		}
	}

	return nil
}

// phase2 reinstates the true objective, prices it out against the current
// basis, and optimizes to Optimal or Unbounded.
func (r *runner) phase2() error {
	r.state = Phase2Running
	r.tab.SetObjective(r.sf.C)
	r.tab.PriceOut()

	outcome, err := r.loop()
	if err != nil {
		return err
	}
	if outcome == stepUnbounded {
		r.state = Unbounded

		return nil
	}
	r.state = Optimal

	return nil
}

// loop runs the pivot engine until it reports a non-pivot outcome or the
// iteration budget is exhausted.
func (r *runner) loop() (stepOutcome, error) {
	for {
		if r.iterations >= r.maxIter {
			return stepOptimal, fmt.Errorf("%w: %d pivots (cap %d)",
				ErrIterationLimit, r.iterations, r.maxIter)
		}

		outcome, err := step(r.tab, r.opts.tol)
		if err != nil {
			return outcome, err
		}
		if outcome != stepPivoted {
			return outcome, nil
		}
		r.iterations++
	}
}
