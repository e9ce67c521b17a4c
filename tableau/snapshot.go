// Package tableau: display-ready export of the tableau state.
// The presentation layer renders the final tableau as a table with a
// basis column; Snapshot produces that structure without exposing the
// mutable backing matrix.

package tableau

import "fmt"

// Snapshot is an immutable, display-ready copy of a tableau.
//
// Headers lists the column titles: "Basis", one "x{j}" per variable
// column, then "b". Labels names each row by its basic variable, with the
// objective row labeled "Z". Rows holds the numeric cells, one slice per
// tableau row (objective row last), each n+1 wide (coefficients then RHS).
type Snapshot struct {
	Headers []string
	Labels  []string
	Rows    [][]float64
}

// Snapshot copies the current tableau state for display. The copy shares
// no memory with the tableau, so it stays valid after further pivots.
func (t *Tableau) Snapshot() Snapshot {
	s := Snapshot{
		Headers: make([]string, 0, t.n+2),
		Labels:  make([]string, 0, t.m+1),
		Rows:    make([][]float64, 0, t.m+1),
	}

	s.Headers = append(s.Headers, "Basis")
	for j := 0; j < t.n; j++ {
		s.Headers = append(s.Headers, fmt.Sprintf("x%d", j+1))
	}
	s.Headers = append(s.Headers, "b")

	for i := 0; i <= t.m; i++ {
		if i < t.m {
			s.Labels = append(s.Labels, fmt.Sprintf("x%d", t.basis[i]+1))
		} else {
			s.Labels = append(s.Labels, "Z")
		}
		row := make([]float64, t.n+1)
		for j := 0; j <= t.n; j++ {
			row[j] = t.data.At(i, j)
		}
		s.Rows = append(s.Rows, row)
	}

	return s
}
