// White-box tests for the pivot engine: entering/leaving selection rules
// and their deterministic tie-breaks.
package simplex

import (
	"testing"

	"github.com/deyme17/LPSolver/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/mat"
)

// newTab builds a tableau directly, bypassing the normalizer, so selection
// rules can be probed on exact hand-built numbers.
func newTab(t *testing.T, m, n int, a, b, cost []float64, basis []int) *tableau.Tableau {
	t.Helper()
	tab, err := tableau.New(mat.NewDense(m, n, a), b, cost, basis)
	require.NoError(t, err)

	return tab
}

func TestChooseEntering_MostNegative(t *testing.T) {
	tab := newTab(t, 1, 3,
		[]float64{1, 1, 1},
		[]float64{4},
		[]float64{-3, -5, 0},
		[]int{2})

	assert.Equal(t, 1, chooseEntering(tab, DefaultTolerance), "-5 beats -3")
}

func TestChooseEntering_TieTakesLowestIndex(t *testing.T) {
	tab := newTab(t, 1, 3,
		[]float64{1, 1, 1},
		[]float64{4},
		[]float64{-5, -5, 0},
		[]int{2})

	assert.Equal(t, 0, chooseEntering(tab, DefaultTolerance), "exact tie resolves to the lower column")
}

func TestChooseEntering_SkipsBlocked(t *testing.T) {
	tab := newTab(t, 1, 3,
		[]float64{1, 1, 1},
		[]float64{4},
		[]float64{-3, -5, 0},
		[]int{2})
	tab.Block(1)

	assert.Equal(t, 0, chooseEntering(tab, DefaultTolerance), "blocked columns never enter")
}

func TestChooseEntering_OptimalReturnsMinusOne(t *testing.T) {
	tab := newTab(t, 1, 3,
		[]float64{1, 1, 1},
		[]float64{4},
		[]float64{0, 2, 0},
		[]int{2})

	assert.Equal(t, -1, chooseEntering(tab, DefaultTolerance), "no negative reduced cost means optimal")
}

func TestChooseEntering_ToleranceBoundary(t *testing.T) {
	// A reduced cost of exactly −tol must NOT qualify (strict comparison);
	// one clearly below must.
	tab := newTab(t, 1, 2,
		[]float64{1, 1},
		[]float64{1},
		[]float64{-DefaultTolerance, 0},
		[]int{1})
	assert.Equal(t, -1, chooseEntering(tab, DefaultTolerance))

	tab = newTab(t, 1, 2,
		[]float64{1, 1},
		[]float64{1},
		[]float64{-2 * DefaultTolerance, 0},
		[]int{1})
	assert.Equal(t, 0, chooseEntering(tab, DefaultTolerance))
}

func TestChooseLeaving_MinimumRatio(t *testing.T) {
	// Entering column 0 with coefficients (1, 2) and RHS (4, 6):
	// ratios 4 and 3, so row 1 leaves.
	tab := newTab(t, 2, 3,
		[]float64{
			1, 1, 0,
			2, 0, 1,
		},
		[]float64{4, 6},
		[]float64{-1, 0, 0},
		[]int{1, 2})

	assert.Equal(t, 1, chooseLeaving(tab, 0, DefaultTolerance))
}

func TestChooseLeaving_SkipsNonPositiveCoefficients(t *testing.T) {
	// Row 0 has a negative coefficient in the entering column; only row 1
	// participates in the ratio test.
	tab := newTab(t, 2, 3,
		[]float64{
			-1, 1, 0,
			1, 0, 1,
		},
		[]float64{4, 6},
		[]float64{-1, 0, 0},
		[]int{1, 2})

	assert.Equal(t, 1, chooseLeaving(tab, 0, DefaultTolerance))
}

func TestChooseLeaving_UnboundedReturnsMinusOne(t *testing.T) {
	tab := newTab(t, 2, 3,
		[]float64{
			-1, 1, 0,
			0, 0, 1,
		},
		[]float64{4, 6},
		[]float64{-1, 0, 0},
		[]int{1, 2})

	assert.Equal(t, -1, chooseLeaving(tab, 0, DefaultTolerance), "no positive coefficient means unbounded")
}

func TestChooseLeaving_TieTakesLowestBasisVariable(t *testing.T) {
	// Both rows tie at ratio 4. Basis variables are columns 1 and 2: the
	// Bland-style rule picks the row holding the lower one, regardless of
	// row order.
	a := []float64{
		1, 1, 0,
		1, 0, 1,
	}
	tab := newTab(t, 2, 3, a, []float64{4, 4}, []float64{-1, 0, 0}, []int{1, 2})
	assert.Equal(t, 0, chooseLeaving(tab, 0, DefaultTolerance), "basis column 1 is in row 0")

	// Swap the basis assignment: now the lower basis variable lives in row 1.
	b := []float64{
		1, 0, 1,
		1, 1, 0,
	}
	tab = newTab(t, 2, 3, b, []float64{4, 4}, []float64{-1, 0, 0}, []int{2, 1})
	assert.Equal(t, 1, chooseLeaving(tab, 0, DefaultTolerance), "basis column 1 is in row 1")
}

func TestStep_Outcomes(t *testing.T) {
	// Optimal: nothing to do.
	tab := newTab(t, 1, 2, []float64{1, 1}, []float64{4}, []float64{1, 0}, []int{1})
	out, err := step(tab, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, stepOptimal, out)

	// Unbounded: improving column, no positive coefficient.
	tab = newTab(t, 1, 2, []float64{-1, 1}, []float64{4}, []float64{-1, 0}, []int{1})
	out, err = step(tab, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, stepUnbounded, out)

	// Pivoted: exactly one basis change per invocation.
	tab = newTab(t, 1, 2, []float64{1, 1}, []float64{4}, []float64{-1, 0}, []int{1})
	out, err = step(tab, DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, stepPivoted, out)
	assert.Equal(t, 0, tab.BasisAt(0), "the entering column is now basic")
}
