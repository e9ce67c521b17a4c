// Package tableau: construction, accessors, and the pivot primitive.

package tableau

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tableau is the working state of one simplex solve: an (m+1)×(n+1) dense
// matrix plus basis bookkeeping. The last row is the objective row, the
// last column the RHS column.
//
// Invariant maintained by Pivot: for every constraint row i, column
// basis[i] is an identity column: value 1 in row i, 0 in every other row
// including the objective row.
type Tableau struct {
	data    *mat.Dense // (m+1)×(n+1): m constraint rows + objective row, n columns + RHS
	basis   []int      // basis[i] = column currently basic in row i
	blocked []bool     // columns barred from ever re-entering the basis
	m, n    int
	eps     float64 // zero-pivot threshold
}

// New builds a tableau for the standard-form program
//
//	minimize cost·x  subject to  a·x = b, x ≥ 0
//
// with the given initial basis. The cost row is installed as-is; call
// PriceOut afterwards if the initial basis has nonzero costs.
//
// Validation, in order:
//  1. a must be non-nil (ErrNilMatrix).
//  2. len(b) must equal the row count, len(cost) the column count
//     (ErrDimensionMismatch).
//  3. basis must hold one unique in-range column per row (ErrBadBasis).
func New(a *mat.Dense, b, cost []float64, basis []int, opts ...Option) (*Tableau, error) {
	// 1) Nil check before touching dimensions.
	if a == nil {
		return nil, ErrNilMatrix
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, n := a.Dims()

	// 2) Shape checks.
	if len(b) != m {
		return nil, fmt.Errorf("%w: %d RHS entries for %d rows", ErrDimensionMismatch, len(b), m)
	}
	if len(cost) != n {
		return nil, fmt.Errorf("%w: %d costs for %d columns", ErrDimensionMismatch, len(cost), n)
	}

	// 3) Basis checks: length, range, uniqueness.
	if len(basis) != m {
		return nil, fmt.Errorf("%w: %d basis entries for %d rows", ErrBadBasis, len(basis), m)
	}
	seen := make(map[int]bool, m)
	for i, col := range basis {
		if col < 0 || col >= n {
			return nil, fmt.Errorf("%w: row %d references column %d", ErrBadBasis, i, col)
		}
		if seen[col] {
			return nil, fmt.Errorf("%w: column %d is basic in two rows", ErrBadBasis, col)
		}
		seen[col] = true
	}

	// Single allocation for the whole solve; never resized afterwards.
	t := &Tableau{
		data:    mat.NewDense(m+1, n+1, nil),
		basis:   append([]int(nil), basis...),
		blocked: make([]bool, n),
		m:       m,
		n:       n,
		eps:     o.eps,
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.data.Set(i, j, a.At(i, j))
		}
		t.data.Set(i, n, b[i])
	}
	t.SetObjective(cost)

	return t, nil
}

// M returns the number of constraint rows.
func (t *Tableau) M() int { return t.m }

// N returns the number of variable columns (excluding the RHS column).
func (t *Tableau) N() int { return t.n }

// At returns the tableau entry at (row, col); row t.M() is the objective
// row, col t.N() the RHS column.
func (t *Tableau) At(row, col int) float64 { return t.data.At(row, col) }

// RHS returns the right-hand-side value of a constraint row, i.e. the
// current value of that row's basic variable.
func (t *Tableau) RHS(row int) float64 { return t.data.At(row, t.n) }

// ReducedCost returns the objective-row entry of column col.
func (t *Tableau) ReducedCost(col int) float64 { return t.data.At(t.m, col) }

// ObjectiveValue returns the objective value of the current basic
// solution: by convention, the negative of the objective-row RHS entry.
func (t *Tableau) ObjectiveValue() float64 { return -t.data.At(t.m, t.n) }

// Basis returns a copy of the row → basic-column mapping.
func (t *Tableau) Basis() []int { return append([]int(nil), t.basis...) }

// BasisAt returns the column currently basic in the given row.
func (t *Tableau) BasisAt(row int) int { return t.basis[row] }

// Block permanently bars a column from re-entering the basis. The effect
// is that of an infinite reduced cost, kept finite: the entering rule in
// package simplex skips blocked columns unconditionally.
func (t *Tableau) Block(col int) { t.blocked[col] = true }

// Blocked reports whether a column has been barred from the basis.
func (t *Tableau) Blocked(col int) bool { return t.blocked[col] }

// SetObjective replaces the objective row with the given cost vector and
// a zero RHS. Used by the phase machine to swap between the artificial
// feasibility objective and the true objective. The cost slice length must
// be N(); anything else is a programmer error and panics.
func (t *Tableau) SetObjective(cost []float64) {
	if len(cost) != t.n {
		panic(fmt.Sprintf("tableau: %d costs for %d columns", len(cost), t.n))
	}
	obj := t.data.RawRowView(t.m)
	copy(obj, cost)
	obj[t.n] = 0
}

// PriceOut restores the reduced-cost property of the objective row after
// SetObjective: for every constraint row whose basic column carries a
// nonzero objective entry, that row is subtracted out (basis
// substitution). Afterwards every basic column has reduced cost 0 and the
// objective-row RHS is the negated objective value of the current basis.
func (t *Tableau) PriceOut() {
	obj := t.data.RawRowView(t.m)
	for i := 0; i < t.m; i++ {
		factor := obj[t.basis[i]]
		if factor == 0 {
			continue
		}
		floats.AddScaled(obj, -factor, t.data.RawRowView(i))
		obj[t.basis[i]] = 0 // exact zero, not roundoff residue
	}
}

// Pivot makes column col basic in row row via one Gauss-Jordan step:
//
//  1. the pivot row is divided by the pivot element, making it 1;
//  2. every other row r (objective row included) gets
//     row_r -= row_r[col] · pivotRow, zeroing its entry in col;
//  3. basis[row] is updated to col.
//
// Preconditions: indices in range (ErrOutOfRange) and a pivot element of
// magnitude ≥ epsilon. A sub-epsilon pivot element means the selection
// policy upstream is broken; Pivot refuses it with ErrDegeneratePivot and
// leaves the tableau unchanged.
func (t *Tableau) Pivot(row, col int) error {
	if row < 0 || row >= t.m || col < 0 || col >= t.n {
		return fmt.Errorf("%w: pivot at (%d,%d)", ErrOutOfRange, row, col)
	}

	pivot := t.data.At(row, col)
	if math.Abs(pivot) < t.eps {
		return fmt.Errorf("%w: |%g| < %g at (%d,%d)", ErrDegeneratePivot, pivot, t.eps, row, col)
	}

	// 1) Normalize the pivot row.
	pr := t.data.RawRowView(row)
	floats.Scale(1/pivot, pr)
	pr[col] = 1 // exact, despite roundoff

	// 2) Eliminate col from every other row, objective row included.
	for r := 0; r <= t.m; r++ {
		if r == row {
			continue
		}
		target := t.data.RawRowView(r)
		factor := target[col]
		if factor == 0 {
			continue
		}
		floats.AddScaled(target, -factor, pr)
		target[col] = 0 // exact zero in the pivot column
	}

	// 3) Record the basis change.
	t.basis[row] = col

	return nil
}
