// Package lp_test contains unit tests for the lp model types: structural
// validation, bound defaults, cloning, and result formatting.
package lp_test

import (
	"math"
	"testing"

	"github.com/deyme17/LPSolver/lp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validProblem returns a minimal well-formed two-variable problem used as
// the baseline for mutation in the validation tests.
func validProblem() *lp.Problem {
	return &lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{3, 2},
		Constraints: []lp.Constraint{
			{Coeffs: []float64{1, 1}, Rel: lp.LessEq, RHS: 4},
			{Coeffs: []float64{1, 3}, Rel: lp.LessEq, RHS: 6},
		},
	}
}

// ------------------------------------------------------------------------
// 1. Validation: well-formed input passes, each violation hits its sentinel.
// ------------------------------------------------------------------------

func TestValidate_WellFormed(t *testing.T) {
	assert.NoError(t, validProblem().Validate(), "baseline problem must validate")
}

func TestValidate_NoVariables(t *testing.T) {
	p := &lp.Problem{
		Constraints: []lp.Constraint{{Coeffs: nil, Rel: lp.LessEq, RHS: 1}},
	}
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "empty objective must be malformed")
}

func TestValidate_NoConstraints(t *testing.T) {
	p := &lp.Problem{Objective: []float64{1}}
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "zero constraints must be malformed")
}

func TestValidate_CoefficientCountMismatch(t *testing.T) {
	p := validProblem()
	p.Constraints[1].Coeffs = []float64{1} // one coefficient, two variables
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "short coefficient row must be malformed")
}

func TestValidate_UnknownRelation(t *testing.T) {
	p := validProblem()
	p.Constraints[0].Rel = lp.Relation(42)
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "relation outside the closed set must be malformed")
}

func TestValidate_UnknownSense(t *testing.T) {
	p := validProblem()
	p.Sense = lp.Sense(7)
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "sense outside the closed set must be malformed")
}

func TestValidate_NaNCoefficient(t *testing.T) {
	p := validProblem()
	p.Constraints[0].Coeffs[1] = math.NaN()

	err := p.Validate()
	assert.ErrorIs(t, err, lp.ErrMalformedProblem, "NaN coefficient must be malformed")
	assert.ErrorIs(t, err, lp.ErrNotFinite, "NaN coefficient must match ErrNotFinite")
}

func TestValidate_InfObjective(t *testing.T) {
	p := validProblem()
	p.Objective[0] = math.Inf(1)
	assert.ErrorIs(t, p.Validate(), lp.ErrNotFinite, "+Inf objective coefficient must match ErrNotFinite")
}

func TestValidate_BoundsShapeAndOrder(t *testing.T) {
	p := validProblem()
	p.Lower = []float64{0} // wrong length
	assert.ErrorIs(t, p.Validate(), lp.ErrMalformedProblem, "short bound slice must be malformed")

	p = validProblem()
	p.Lower = []float64{0, 5}
	p.Upper = []float64{10, 3} // Lower[1] > Upper[1]
	err := p.Validate()
	assert.ErrorIs(t, err, lp.ErrMalformedProblem, "inverted bounds must be malformed")
	assert.ErrorIs(t, err, lp.ErrBadBounds, "inverted bounds must match ErrBadBounds")
}

func TestValidate_UpperInfAllowed(t *testing.T) {
	p := validProblem()
	p.Upper = []float64{math.Inf(1), math.Inf(1)}
	assert.NoError(t, p.Validate(), "+Inf upper bound means unbounded above and is legal")
}

// ------------------------------------------------------------------------
// 2. Accessors and cloning.
// ------------------------------------------------------------------------

func TestBounds_Defaults(t *testing.T) {
	p := validProblem()
	assert.Equal(t, 0.0, p.LowerBound(0), "default lower bound is 0")
	assert.True(t, math.IsInf(p.UpperBound(1), 1), "default upper bound is +Inf")
}

func TestClone_IsDeep(t *testing.T) {
	p := validProblem()
	p.Lower = []float64{0, 0}

	cp := p.Clone()
	require.Equal(t, p, cp, "clone must be value-equal to the original")

	// Mutating the clone must not leak into the original.
	cp.Objective[0] = -1
	cp.Constraints[0].Coeffs[0] = -1
	cp.Lower[0] = -1
	assert.Equal(t, 3.0, p.Objective[0], "objective must not alias")
	assert.Equal(t, 1.0, p.Constraints[0].Coeffs[0], "constraint rows must not alias")
	assert.Equal(t, 0.0, p.Lower[0], "bounds must not alias")
}

// ------------------------------------------------------------------------
// 3. Display formatting.
// ------------------------------------------------------------------------

func TestResult_StringOptimal(t *testing.T) {
	r := lp.Result{Status: lp.StatusOptimal, Value: 10, X: []float64{3, 1}}
	want := "OPTIMAL: value = 10.000000\nx_1 = 3.000000\nx_2 = 1.000000"
	assert.Equal(t, want, r.String())
}

func TestResult_StringTerminalStatuses(t *testing.T) {
	assert.Equal(t, "INFEASIBLE", lp.Result{Status: lp.StatusInfeasible}.String())
	assert.Equal(t, "UNBOUNDED", lp.Result{Status: lp.StatusUnbounded}.String())
}

func TestEnum_Strings(t *testing.T) {
	assert.Equal(t, "Maximize", lp.Maximize.String())
	assert.Equal(t, "Minimize", lp.Minimize.String())
	assert.Equal(t, "<=", lp.LessEq.String())
	assert.Equal(t, ">=", lp.GreaterEq.String())
	assert.Equal(t, "=", lp.Eq.String())
}
