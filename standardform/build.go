// Package standardform: the Build operation.
// Build is the only way to obtain a StandardForm; it performs the full
// normalization pipeline in one pass over the problem.

package standardform

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/deyme17/LPSolver/lp"
)

// workRow is a constraint row mid-normalization: still an inequality or
// equality over the shifted structural variables, before auxiliary columns
// are attached.
type workRow struct {
	coeffs []float64
	rel    lp.Relation
	rhs    float64
}

// Build converts p into standard minimization form.
//
// Pipeline:
//  1. Fail fast on nil input and on structural violations (lp.Validate),
//     before any matrix is allocated.
//  2. Remove nonzero lower bounds by the shift x = x' + Lower, adjusting
//     every right-hand side and recording the constant objective offset.
//  3. Append one ≤ row per finite upper bound (expressed in shifted
//     variables).
//  4. Negate the objective when the problem maximizes; the solver always
//     minimizes.
//  5. Sign-normalize each row: negative RHS flips the whole row, swapping
//     ≤ ↔ ≥, so every RHS is non-negative before auxiliary columns exist.
//  6. Attach auxiliary columns (≤ rows a +1 slack, ≥ rows a −1 surplus
//     and a +1 artificial, = rows a +1 artificial) and seed the initial
//     basis with the slack (or artificial) of each row.
//
// Returns lp.ErrMalformedProblem (wrapped) for invalid input and
// ErrNilProblem for a nil problem.
func Build(p *lp.Problem) (*StandardForm, error) {
	// 1) Validate before any allocation.
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n0 := p.NumVariables()

	// 2) Lower-bound shift: x = x' + shift with x' ≥ 0.
	shift := make([]float64, n0)
	for j := 0; j < n0; j++ {
		shift[j] = p.LowerBound(j)
	}

	// 3) Objective in minimization sense, plus the constant term the shift
	//    contributes to it.
	cost := append([]float64(nil), p.Objective...)
	negated := p.Sense == lp.Maximize
	if negated {
		floats.Scale(-1, cost)
	}
	offset := floats.Dot(cost, shift)

	// 4) Collect working rows: original constraints with shifted RHS, then
	//    one ≤ row per finite upper bound.
	rows := make([]workRow, 0, p.NumConstraints())
	for _, con := range p.Constraints {
		rows = append(rows, workRow{
			coeffs: append([]float64(nil), con.Coeffs...),
			rel:    con.Rel,
			rhs:    con.RHS - floats.Dot(con.Coeffs, shift),
		})
	}
	for j := 0; j < n0; j++ {
		hi := p.UpperBound(j)
		if math.IsInf(hi, 1) {
			continue
		}
		unit := make([]float64, n0)
		unit[j] = 1
		rows = append(rows, workRow{coeffs: unit, rel: lp.LessEq, rhs: hi - shift[j]})
	}

	// 5) Sign normalization: every RHS must be ≥ 0 before slack insertion,
	//    so the seeded basis is feasible on ≤ rows. Flipping a row swaps
	//    the inequality direction.
	for i := range rows {
		if rows[i].rhs >= 0 {
			continue
		}
		floats.Scale(-1, rows[i].coeffs)
		rows[i].rhs = -rows[i].rhs
		switch rows[i].rel {
		case lp.LessEq:
			rows[i].rel = lp.GreaterEq
		case lp.GreaterEq:
			rows[i].rel = lp.LessEq
		case lp.Eq:
			// equalities keep their relation
		}
	}

	// 6) Column layout: structural | slack/surplus | artificial.
	numSlack, numArt := 0, 0
	for _, r := range rows {
		if r.rel != lp.Eq {
			numSlack++
		}
		if r.rel != lp.LessEq {
			numArt++
		}
	}
	m, n := len(rows), n0+numSlack+numArt

	a := mat.NewDense(m, n, nil)
	b := make([]float64, m)
	c := make([]float64, n)
	copy(c, cost) // auxiliary columns cost 0

	kinds := make([]VarKind, n)
	for j := n0; j < n0+numSlack; j++ {
		kinds[j] = Slack
	}
	for j := n0 + numSlack; j < n; j++ {
		kinds[j] = Artificial
	}

	basis := make([]int, m)
	slackCol, artCol := n0, n0+numSlack
	for i, r := range rows {
		for j, v := range r.coeffs {
			a.Set(i, j, v)
		}
		b[i] = r.rhs
		switch r.rel {
		case lp.LessEq:
			a.Set(i, slackCol, 1)
			basis[i] = slackCol
			slackCol++
		case lp.GreaterEq:
			a.Set(i, slackCol, -1)
			slackCol++
			a.Set(i, artCol, 1)
			basis[i] = artCol
			artCol++
		case lp.Eq:
			a.Set(i, artCol, 1)
			basis[i] = artCol
			artCol++
		}
	}

	return &StandardForm{
		A:             a,
		B:             b,
		C:             c,
		Kinds:         kinds,
		Basis:         basis,
		NumStructural: n0,
		NumArtificial: numArt,
		Shift:         shift,
		Offset:        offset,
		Negated:       negated,
	}, nil
}
