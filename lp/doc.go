// Package lp defines the fundamental model types for linear programming
// problems and their solutions.
//
// The lp package provides:
//
//   - Problem: an immutable description of a linear program: optimization
//     sense, objective coefficients, constraint rows (coefficients, relation,
//     right-hand side) and optional per-variable bounds.
//   - Result: the outcome of a solve: a terminal Status plus, when optimal,
//     the objective value and the variable assignment.
//   - Validate: fail-fast structural validation, performed before any
//     numeric work begins.
//
// Problems are plain value holders: the solver never mutates them, and a
// single Problem may be solved concurrently by independent callers.
// All numeric heavy lifting lives one layer down, in standardform, tableau
// and simplex.
//
// See the examples in simplex for usage patterns.
package lp
