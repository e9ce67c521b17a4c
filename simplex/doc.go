// Package simplex drives the two-phase primal Simplex Method over a dense
// tableau and exposes the library's single solving entry point.
//
// Solve takes an lp.Problem, normalizes it through standardform, builds a
// tableau, and iterates single pivots until a terminal state is reached:
//
//	Phase1Running ─▶ Phase1Done ─▶ Phase2Running ─▶ Optimal
//	      │                              │
//	      ▼                              ▼
//	 Infeasible                     Unbounded
//
// Phase 1 runs only when the standard form needed artificial variables
// (any ≥ or = row): it minimizes the artificial sum, which constructs an
// initial basic feasible solution when one exists. A strictly positive
// phase-1 optimum proves the feasible region empty (Infeasible). On
// success the artificial columns are blocked from ever re-entering, any
// artificial still basic at level zero is pivoted out (or its row
// recognized as redundant), and phase 2 reinstates the true objective
// (priced out against the current basis) and optimizes it.
//
// Selection rules (deterministic by construction):
//
//   - Entering: Dantzig's rule, the most negative reduced cost below
//     −tolerance, ties broken by lowest column index.
//   - Leaving: minimum ratio test over rows with positive entering-column
//     coefficient, ties broken by lowest basic-variable index
//     (Bland-style), which prevents cycling under degeneracy.
//
// Terminal outcomes vs faults:
//
//   - Optimal / Infeasible / Unbounded are legitimate outcomes for valid
//     inputs and are returned inside lp.Result, never as errors.
//   - ErrIterationLimit and tableau.ErrDegeneratePivot are solver faults:
//     a broken invariant or a failure to converge within the hard cap.
//     They abort the solve; nothing partial is returned.
//
// Concurrency: a solve is synchronous and owns all of its mutable state;
// concurrent Solve calls on independent (or even shared, since Problems
// are read-only) inputs need no locking.
//
// Complexity per pivot: O(m·n); the iteration cap defaults to 10·(m+n).
package simplex
