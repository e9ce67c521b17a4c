// Package simplex: the pivot engine, entering/leaving selection and the
// single-pivot step. The phase machine in phases.go loops this engine to
// convergence; the engine itself performs exactly one pivot per call.

package simplex

import "github.com/deyme17/LPSolver/tableau"

// stepOutcome classifies one engine invocation.
type stepOutcome int

const (
	// stepPivoted: one pivot was performed; the loop continues.
	stepPivoted stepOutcome = iota

	// stepOptimal: no reduced cost is below −tolerance; the current
	// tableau is optimal for the installed objective.
	stepOptimal

	// stepUnbounded: an improving column has no positive row coefficient;
	// the objective is unbounded in that direction.
	stepUnbounded
)

// chooseEntering applies Dantzig's rule: among non-blocked columns, pick
// the most negative reduced cost below −tol. The strict "<" comparison
// makes ties resolve to the lowest column index, keeping the engine
// deterministic. Returns −1 when no column qualifies (optimality).
func chooseEntering(t *tableau.Tableau, tol float64) int {
	entering := -1
	best := -tol
	for j := 0; j < t.N(); j++ {
		if t.Blocked(j) {
			continue
		}
		if rc := t.ReducedCost(j); rc < best {
			best = rc
			entering = j
		}
	}

	return entering
}

// chooseLeaving applies the minimum ratio test for the entering column:
// among rows with coefficient > tol, pick the row minimizing RHS/coeff.
// Ratio ties (within tol) are broken by the lowest basic-variable index,
// the Bland-style rule that guarantees termination under degeneracy.
// Returns −1 when no row has a positive coefficient (unboundedness).
func chooseLeaving(t *tableau.Tableau, entering int, tol float64) int {
	leaving := -1
	var best float64
	for i := 0; i < t.M(); i++ {
		coeff := t.At(i, entering)
		if coeff <= tol {
			continue
		}
		ratio := t.RHS(i) / coeff
		switch {
		case leaving == -1 || ratio < best-tol:
			best = ratio
			leaving = i
		case ratio <= best+tol && t.BasisAt(i) < t.BasisAt(leaving):
			// Tied ratio: prefer the row whose basic variable has the
			// lower index.
			best = ratio
			leaving = i
		}
	}

	return leaving
}

// step performs at most one pivot against the currently installed
// objective. It never interprets the outcome: mapping stepOptimal /
// stepUnbounded onto solver states is the phase machine's job.
func step(t *tableau.Tableau, tol float64) (stepOutcome, error) {
	entering := chooseEntering(t, tol)
	if entering < 0 {
		return stepOptimal, nil
	}

	leaving := chooseLeaving(t, entering, tol)
	if leaving < 0 {
		return stepUnbounded, nil
	}

	// The ratio test only admits clearly positive coefficients, so a
	// DegeneratePivot here signals a broken invariant; propagate as-is.
	if err := t.Pivot(leaving, entering); err != nil {
		return stepPivoted, err
	}

	return stepPivoted, nil
}
