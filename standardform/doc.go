// Package standardform converts an lp.Problem into the standard
// minimization form consumed by the simplex machinery.
//
// Standard form means:
//
//   - the objective is minimized (Maximize problems are negated on entry
//     and flagged for re-negation on output);
//   - every decision variable is non-negative (nonzero lower bounds are
//     removed by shifting, finite upper bounds become extra ≤ rows);
//   - every constraint is an equality with a non-negative right-hand side
//     (rows with negative RHS are multiplied by −1 first, which flips
//     ≤ ↔ ≥; then ≤ rows gain a +1 slack, ≥ rows a −1 surplus plus a +1
//     artificial, = rows a +1 artificial).
//
// The artificial columns exist only to seed a starting basis for phase 1
// of the simplex method; the Kinds slice records which columns are
// structural, slack/surplus, or artificial so later stages can tell them
// apart. Build also records everything needed to map a solution of the
// standard form back to the user's variables: the per-variable shift, the
// constant objective offset it induces, and the negation flag.
//
// Complexity:
//
//   - Time:  O(m·n) to assemble the constraint matrix
//   - Space: O(m·n) for the dense matrix (one allocation, never resized)
package standardform
