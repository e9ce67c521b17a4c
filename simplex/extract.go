// Package simplex: solution extraction.
// Reads a terminal tableau back into the caller's coordinates: basic
// structural variables take their row's RHS, everything else is zero,
// lower-bound shifts are re-applied, and the objective value is restored
// to the problem's original sense.

package simplex

import (
	"gonum.org/v1/gonum/floats"

	"github.com/deyme17/LPSolver/lp"
)

// extract converts the runner's terminal state into an lp.Result.
// Must only be called once run() has reached a terminal state.
func (r *runner) extract() lp.Result {
	switch r.state {
	case Infeasible:
		return lp.Result{Status: lp.StatusInfeasible}
	case Unbounded:
		return lp.Result{Status: lp.StatusUnbounded}
	}

	// 1) Structural assignment: a structural variable's value is the RHS
	//    of the row it is basic in; non-basic variables are zero.
	x := make([]float64, r.sf.NumStructural)
	for i := 0; i < r.tab.M(); i++ {
		if col := r.tab.BasisAt(i); col < r.sf.NumStructural {
			x[col] = r.tab.RHS(i)
		}
	}

	// 2) Undo the lower-bound shift: x = x' + Shift.
	floats.Add(x, r.sf.Shift)

	// 3) Objective value: tableau value plus the shift-induced constant,
	//    re-negated when the original problem maximized.
	value := r.tab.ObjectiveValue() + r.sf.Offset
	if r.sf.Negated {
		value = -value
	}

	return lp.Result{Status: lp.StatusOptimal, Value: value, X: x}
}
