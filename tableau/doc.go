// Package tableau implements the dense simplex tableau: the live numeric
// state of a solve, plus the single mutating primitive, the pivot.
//
// A Tableau is an (m+1)×(n+1) dense matrix for a standard-form program
// with m constraint rows and n columns: the first m rows hold the
// constraint coefficients with their right-hand sides in the extra last
// column, and the extra last row is the objective row (reduced costs, with
// the negated objective value in its RHS cell). Basis bookkeeping maps
// each constraint row to the column currently basic in it.
//
// Pivot performs one Gauss-Jordan elimination step: the pivot row is
// scaled so the pivot element becomes 1, then every other row (the
// objective row included) has its entry in the pivot column eliminated.
// Entering/leaving selection lives in package simplex; the tableau only
// guards the numeric precondition that the pivot element is nonzero
// within epsilon, and reports a violation as ErrDegeneratePivot (a solver
// fault, not a recoverable condition).
//
// Memory: the backing matrix is allocated once at construction, sized to
// (m+1)×(n+1), and never resized. A Tableau is owned by exactly one
// in-flight solve and is not safe for concurrent use.
//
// Complexity:
//
//   - Pivot:    O(m·n)
//   - PriceOut: O(m·n)
//   - Snapshot: O(m·n)
package tableau
