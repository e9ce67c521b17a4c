// Package tableau: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tableau package. All operations return these sentinels (with context
// added via fmt.Errorf("...: %w", Err)) and tests check them via
// errors.Is. Panics are reserved for invalid option values.

package tableau

import "errors"

var (
	// ErrNilMatrix indicates that a nil *mat.Dense was passed to New.
	ErrNilMatrix = errors.New("tableau: constraint matrix is nil")

	// ErrDimensionMismatch indicates incompatible dimensions between the
	// constraint matrix and the RHS, cost, or basis slices.
	ErrDimensionMismatch = errors.New("tableau: dimension mismatch")

	// ErrBadBasis indicates a basis of the wrong length, with an index out
	// of column range, or with duplicate entries.
	ErrBadBasis = errors.New("tableau: invalid basis")

	// ErrOutOfRange indicates that a row or column index is outside the
	// tableau bounds.
	ErrOutOfRange = errors.New("tableau: index out of range")

	// ErrDegeneratePivot indicates that the chosen pivot element is zero
	// within epsilon. The selection policy must never choose such an
	// element, so this is a solver fault signaling a broken invariant
	// upstream, never a legitimate terminal outcome.
	ErrDegeneratePivot = errors.New("tableau: pivot element is zero within epsilon")
)
