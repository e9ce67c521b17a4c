// Package lp: fail-fast structural validation of Problems.
// Validate runs before any matrix is allocated; a Problem that passes is
// safe for standardform.Build to consume without further shape checks.

package lp

import (
	"fmt"
	"math"
)

// Validate checks the structural invariants of the problem and returns a
// descriptive error wrapping ErrMalformedProblem on the first violation.
//
// Checks, in order:
//  1. At least one decision variable.
//  2. At least one constraint row.
//  3. Sense and every Relation belong to their closed enums.
//  4. Every objective coefficient is finite.
//  5. Every constraint has exactly NumVariables coefficients, all finite,
//     and a finite right-hand side.
//  6. Lower/Upper, when present, have exactly NumVariables entries;
//     lower bounds are finite; upper bounds are finite or +Inf;
//     Lower[i] ≤ Upper[i] for all i.
//
// Non-finite values additionally match ErrNotFinite, inverted bounds
// additionally match ErrBadBounds (both via errors.Is).
func (p *Problem) Validate() error {
	// 1) Variable count must be positive.
	n := p.NumVariables()
	if n <= 0 {
		return fmt.Errorf("%w: no decision variables", ErrMalformedProblem)
	}

	// 2) At least one constraint row is required.
	if p.NumConstraints() == 0 {
		return fmt.Errorf("%w: no constraints", ErrMalformedProblem)
	}

	// 3) Sense must be one of the closed enum values.
	if p.Sense != Minimize && p.Sense != Maximize {
		return fmt.Errorf("%w: unknown sense %d", ErrMalformedProblem, int(p.Sense))
	}

	// 4) Objective coefficients must be finite.
	for j, c := range p.Objective {
		if !isFinite(c) {
			return fmt.Errorf("%w: objective coefficient %d: %w", ErrMalformedProblem, j, ErrNotFinite)
		}
	}

	// 5) Each constraint: coefficient count, relation, finiteness.
	for i, con := range p.Constraints {
		if len(con.Coeffs) != n {
			return fmt.Errorf("%w: constraint %d has %d coefficients, want %d",
				ErrMalformedProblem, i, len(con.Coeffs), n)
		}
		if con.Rel != LessEq && con.Rel != GreaterEq && con.Rel != Eq {
			return fmt.Errorf("%w: constraint %d: unknown relation %d",
				ErrMalformedProblem, i, int(con.Rel))
		}
		for j, c := range con.Coeffs {
			if !isFinite(c) {
				return fmt.Errorf("%w: constraint %d coefficient %d: %w",
					ErrMalformedProblem, i, j, ErrNotFinite)
			}
		}
		if !isFinite(con.RHS) {
			return fmt.Errorf("%w: constraint %d right-hand side: %w",
				ErrMalformedProblem, i, ErrNotFinite)
		}
	}

	// 6) Bounds: shape, finiteness, ordering.
	if p.Lower != nil && len(p.Lower) != n {
		return fmt.Errorf("%w: %d lower bounds, want %d", ErrMalformedProblem, len(p.Lower), n)
	}
	if p.Upper != nil && len(p.Upper) != n {
		return fmt.Errorf("%w: %d upper bounds, want %d", ErrMalformedProblem, len(p.Upper), n)
	}
	for j := 0; j < n; j++ {
		lo, hi := p.LowerBound(j), p.UpperBound(j)
		if !isFinite(lo) {
			return fmt.Errorf("%w: lower bound %d: %w", ErrMalformedProblem, j, ErrNotFinite)
		}
		// +Inf is the "unbounded above" marker; NaN and -Inf are invalid.
		if math.IsNaN(hi) || math.IsInf(hi, -1) {
			return fmt.Errorf("%w: upper bound %d: %w", ErrMalformedProblem, j, ErrNotFinite)
		}
		if lo > hi {
			return fmt.Errorf("%w: variable %d: %w", ErrMalformedProblem, j, ErrBadBounds)
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
