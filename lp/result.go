// Package lp: solve outcome model.
// Status and Result describe terminal outcomes of a solve. INFEASIBLE and
// UNBOUNDED are legitimate outcomes for valid inputs and are therefore
// carried here as statuses, never as errors.

package lp

import (
	"fmt"
	"strings"
)

// Status is the terminal state of a solve.
type Status int

const (
	// StatusOptimal means an optimal basic feasible solution was found;
	// Result.Value and Result.X are meaningful.
	StatusOptimal Status = iota

	// StatusInfeasible means the feasible region is empty: no assignment
	// satisfies every constraint and bound.
	StatusInfeasible

	// StatusUnbounded means the objective can be improved without limit
	// over the feasible region.
	StatusUnbounded
)

// String returns the upper-case display name of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	default:
		return "STATUS(unknown)"
	}
}

// resultDecimals is the precision used by Result.String for display,
// matching the presentation layer's default.
const resultDecimals = 6

// Result is the outcome of one solve.
//
// Value and X are present only when Status == StatusOptimal: Value is the
// optimal objective value in the problem's original sense, and X holds one
// value per decision variable (auxiliary slack/artificial variables are
// never exposed here).
type Result struct {
	Status Status    // terminal outcome
	Value  float64   // optimal objective value (iff StatusOptimal)
	X      []float64 // optimal assignment, one entry per variable (iff StatusOptimal)
}

// String renders the result for display: the status, then (when optimal)
// the objective value and one "x_i = v" line per variable, each with
// 6-decimal precision.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(r.Status.String())
	if r.Status != StatusOptimal {
		return sb.String()
	}
	fmt.Fprintf(&sb, ": value = %.*f", resultDecimals, r.Value)
	for i, v := range r.X {
		fmt.Fprintf(&sb, "\nx_%d = %.*f", i+1, resultDecimals, v)
	}

	return sb.String()
}
