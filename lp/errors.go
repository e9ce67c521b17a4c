// Package lp: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the lp
// package. Validation returns these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", Err)); callers match with errors.Is.

package lp

import "errors"

var (
	// ErrMalformedProblem indicates a structurally invalid Problem:
	// no variables, no constraints, a constraint whose coefficient count
	// does not match the variable count, or bound slices of the wrong
	// length. Detected before any tableau work begins.
	ErrMalformedProblem = errors.New("lp: malformed problem")

	// ErrNotFinite indicates a NaN or ±Inf value where a finite value is
	// required (objective coefficients, constraint coefficients, right-hand
	// sides, lower bounds). Upper bounds may be +Inf to mean "unbounded".
	ErrNotFinite = errors.New("lp: non-finite value encountered")

	// ErrBadBounds indicates per-variable bounds with Lower[i] > Upper[i],
	// which makes the feasible region trivially empty by construction
	// rather than by the constraint geometry.
	ErrBadBounds = errors.New("lp: lower bound exceeds upper bound")
)
