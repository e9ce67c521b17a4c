// Package tableau: functional configuration of the numeric policy.
// Every threshold is a documented, named constant overridable through an
// Option, so tests can probe near-boundary cases deterministically.

package tableau

// DefaultEpsilon is the magnitude below which a prospective pivot element
// is treated as zero. Dividing by anything smaller would blow up the row
// scaling, so Pivot refuses with ErrDegeneratePivot instead.
const DefaultEpsilon = 1e-9

// Options holds the tableau numeric policy. Fields are unexported; public
// APIs consume ...Option.
type options struct {
	eps float64 // zero-pivot detection threshold
}

// Option is a functional option for configuring a Tableau.
type Option func(*options)

// WithEpsilon overrides the zero-pivot detection threshold.
// Must be positive; a non-positive value is a programmer error and panics.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("tableau: epsilon must be positive")
	}
	return func(o *options) {
		o.eps = eps
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}
