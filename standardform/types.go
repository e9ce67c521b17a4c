// Package standardform: types and sentinel errors for the normalizer.

package standardform

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNilProblem indicates that a nil *lp.Problem was passed to Build.
var ErrNilProblem = errors.New("standardform: problem is nil")

// VarKind classifies a column of the standard form.
type VarKind int

const (
	// Structural marks an original decision variable of the problem.
	Structural VarKind = iota

	// Slack marks a slack or surplus column added to turn an inequality
	// into an equality (+1 coefficient for ≤ rows, −1 for ≥ rows).
	Slack

	// Artificial marks a phase-1-only column with no physical meaning,
	// added to seed a starting basis for ≥ and = rows.
	Artificial
)

// String returns the display name of the kind.
func (k VarKind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Slack:
		return "slack"
	case Artificial:
		return "artificial"
	default:
		return "kind(unknown)"
	}
}

// StandardForm is a linear program in standard minimization form:
//
//	minimize  C·x   subject to   A·x = B,  x ≥ 0,  B ≥ 0
//
// plus the bookkeeping required to map its solutions back to the original
// problem. Invariants established by Build:
//
//   - every entry of B is ≥ 0;
//   - len(Basis) equals the row count of A, entries are unique column
//     indices, and the basic column of each row is an identity column;
//   - Kinds has one entry per column: NumStructural Structural columns
//     first, then slack/surplus columns, then NumArtificial Artificial
//     columns.
type StandardForm struct {
	A *mat.Dense // constraint matrix, m×n
	B []float64  // right-hand sides, all ≥ 0
	C []float64  // minimization costs (0 on slack and artificial columns)

	Kinds []VarKind // column classification
	Basis []int     // initial basic column of each row

	NumStructural int // count of original decision variables
	NumArtificial int // count of artificial columns

	Shift   []float64 // per-variable lower-bound shift (x = x' + Shift)
	Offset  float64   // constant objective term induced by Shift (minimization sense)
	Negated bool      // true when the original problem was Maximize
}

// NumRows returns the number of constraint rows m.
func (sf *StandardForm) NumRows() int { r, _ := sf.A.Dims(); return r }

// NumCols returns the total number of columns n
// (structural + slack/surplus + artificial).
func (sf *StandardForm) NumCols() int { _, c := sf.A.Dims(); return c }
