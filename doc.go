// Package lpsolver is a pure-Go toolkit for stating and solving linear
// programming problems with the two-phase primal Simplex Method.
//
// 🚀 What is LPSolver?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Problem model: objective, ≤ / ≥ / = constraints, variable bounds
//		• Normalization: automatic conversion to standard minimization form
//		• Dense tableau: Gauss-Jordan pivoting with explicit numeric policy
//		• Two phases: artificial-variable feasibility search, then optimization
//		• Results: optimal value + assignment, or a proof of infeasibility
//		  / unboundedness — never a plausible-looking wrong number
//
// ✨ Why choose LPSolver?
//
//   - Beginner-friendly – one entry point, clear, intuitive naming
//   - Deterministic – fixed tie-break rules, no randomness, no global state
//   - Pure Go – no cgo, no external solver binaries
//   - Honest numerics – every tolerance is a named, overridable constant
//
// Everything is organized under four subpackages:
//
//	lp/           — Problem, Constraint, Result types & validation
//	standardform/ — Problem → standard-form conversion (slack/surplus/artificial)
//	tableau/      — the dense simplex tableau and its pivot primitive
//	simplex/      — entering/leaving rules, the phase machine, Solve()
//
// Quick example:
//
//	p := &lp.Problem{
//	    Sense:     lp.Maximize,
//	    Objective: []float64{3, 5},
//	    Constraints: []lp.Constraint{
//	        {Coeffs: []float64{1, 0}, Rel: lp.LessEq, RHS: 4},
//	        {Coeffs: []float64{0, 2}, Rel: lp.LessEq, RHS: 12},
//	        {Coeffs: []float64{3, 2}, Rel: lp.LessEq, RHS: 18},
//	    },
//	}
//	res, err := simplex.Solve(p)
//	// res.Status == lp.StatusOptimal, res.Value == 36, res.X == [2 6]
//
// Dive into the subpackage docs for the algorithmic details and the full
// numeric-policy reference.
//
//	go get github.com/deyme17/LPSolver
package lpsolver
