// Package lp: model types for linear programs.
// This file defines the closed enums (Sense, Relation, Status) and the
// Problem/Constraint value holders consumed by standardform and simplex.

package lp

import "math"

// Sense selects the optimization direction of a Problem.
//
// The solver internally always minimizes; Maximize problems are negated on
// the way in and their objective value re-negated on the way out.
type Sense int

const (
	// Minimize seeks the smallest objective value over the feasible region.
	Minimize Sense = iota

	// Maximize seeks the largest objective value over the feasible region.
	Maximize
)

// String returns the human-readable name of the sense.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Sense(unknown)"
	}
}

// Relation is the closed set of constraint relations.
// The normalizer branches exhaustively over these three values; any other
// value fails validation with ErrMalformedProblem.
type Relation int

const (
	// LessEq is the relation a·x ≤ b.
	LessEq Relation = iota

	// GreaterEq is the relation a·x ≥ b.
	GreaterEq

	// Eq is the relation a·x = b.
	Eq
)

// String returns the conventional symbol for the relation.
func (r Relation) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Eq:
		return "="
	default:
		return "Relation(unknown)"
	}
}

// Constraint is a single linear constraint row: Coeffs·x Rel RHS.
//
// Invariant (enforced by Problem.Validate): len(Coeffs) equals the
// problem's variable count.
type Constraint struct {
	Coeffs []float64 // one coefficient per decision variable
	Rel    Relation  // ≤, ≥ or =
	RHS    float64   // right-hand side (free value)
}

// Problem is an immutable description of a linear program.
//
// Objective holds one coefficient per decision variable; Constraints holds
// the ordered constraint rows. Lower and Upper are optional per-variable
// bounds: a nil slice means the default for every variable (lower bound 0,
// upper bound +Inf). When non-nil, each must have exactly one entry per
// variable; use math.Inf(1) for an unbounded-above entry.
//
// The solver treats a Problem as read-only for the lifetime of a solve, so
// independent solves of the same Problem need no synchronization.
type Problem struct {
	Sense       Sense        // Minimize or Maximize
	Objective   []float64    // objective coefficients, one per variable
	Constraints []Constraint // ordered constraint rows
	Lower       []float64    // optional per-variable lower bounds (nil ⇒ all 0)
	Upper       []float64    // optional per-variable upper bounds (nil ⇒ all +Inf)
}

// NumVariables returns the number of decision variables, defined by the
// length of the objective coefficient vector.
func (p *Problem) NumVariables() int { return len(p.Objective) }

// NumConstraints returns the number of constraint rows.
func (p *Problem) NumConstraints() int { return len(p.Constraints) }

// LowerBound returns the effective lower bound of variable i
// (0 when Lower is nil).
func (p *Problem) LowerBound(i int) float64 {
	if p.Lower == nil {
		return 0
	}

	return p.Lower[i]
}

// UpperBound returns the effective upper bound of variable i
// (+Inf when Upper is nil).
func (p *Problem) UpperBound(i int) float64 {
	if p.Upper == nil {
		return math.Inf(1)
	}

	return p.Upper[i]
}

// Clone returns a deep copy of the problem. Useful when a caller wants to
// derive a variant (e.g. flip the sense) without touching the original.
func (p *Problem) Clone() *Problem {
	cp := &Problem{Sense: p.Sense}
	cp.Objective = append([]float64(nil), p.Objective...)
	if p.Lower != nil {
		cp.Lower = append([]float64(nil), p.Lower...)
	}
	if p.Upper != nil {
		cp.Upper = append([]float64(nil), p.Upper...)
	}
	cp.Constraints = make([]Constraint, len(p.Constraints))
	for i, c := range p.Constraints {
		cp.Constraints[i] = Constraint{
			Coeffs: append([]float64(nil), c.Coeffs...),
			Rel:    c.Rel,
			RHS:    c.RHS,
		}
	}

	return cp
}
