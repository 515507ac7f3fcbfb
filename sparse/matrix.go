// Package sparse implements the CSR-like symmetric sparse matrix and the
// Jacobi-preconditioned conjugate-gradient solver used by the quadratic
// placer. No example in the retrieved corpus ships an importable sparse
// linear algebra library suited to exact placement-scale SPD systems, so
// this package is hand-written against the standard math package only
// (see DESIGN.md for the justification).
package sparse

import "sort"

type entry struct {
	col uint32
	val float64
}

// Matrix is a row-indexed sparse matrix. Each row stores column-sorted
// (col, value) pairs, supporting O(log rowlen) lookup and O(rowlen)
// insertion. Matrices built by the placer are symmetric positive
// definite by construction, so only the upper triangle (col >= row) is
// ever populated; Matrix itself does not enforce symmetry, it is a
// property of how the placer builds it.
type Matrix struct {
	n    int
	rows [][]entry
}

// NewMatrix creates an n-by-n matrix with every row pre-sized to
// capPerRow entries, so rows do not grow one entry at a time.
func NewMatrix(n int, capPerRow int) *Matrix {
	m := &Matrix{n: n, rows: make([][]entry, n)}
	if capPerRow > 0 {
		for i := range m.rows {
			m.rows[i] = make([]entry, 0, capPerRow)
		}
	}
	return m
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns A(i,j), or zero if absent.
func (m *Matrix) At(i, j int) float64 {
	row := m.rows[i]
	idx := sort.Search(len(row), func(k int) bool { return row[k].col >= uint32(j) })
	if idx < len(row) && row[idx].col == uint32(j) {
		return row[idx].val
	}
	return 0
}

// Add accumulates delta into A(i,j), inserting a new entry if needed.
func (m *Matrix) Add(i, j int, delta float64) {
	row := m.rows[i]
	idx := sort.Search(len(row), func(k int) bool { return row[k].col >= uint32(j) })
	if idx < len(row) && row[idx].col == uint32(j) {
		row[idx].val += delta
		return
	}
	row = append(row, entry{})
	copy(row[idx+1:], row[idx:])
	row[idx] = entry{col: uint32(j), val: delta}
	m.rows[i] = row
}

// Diag returns A(i,i).
func (m *Matrix) Diag(i int) float64 { return m.At(i, i) }

// MulVec computes y = A*x. A is treated as symmetric: for every stored
// off-diagonal entry (i,j) with j>i, the mirrored contribution A(j,i)*x[i]
// is added to y[j] as well, so callers only need to populate the upper
// triangle.
func (m *Matrix) MulVec(x []float64, y []float64) {
	for i := range y {
		y[i] = 0
	}
	for i, row := range m.rows {
		for _, e := range row {
			j := int(e.col)
			y[i] += e.val * x[j]
			if j != i {
				y[j] += e.val * x[i]
			}
		}
	}
}

// EachEntry calls fn once for every stored upper-triangle entry (including
// diagonal entries), in row-major, column-ascending order.
func (m *Matrix) EachEntry(fn func(i, j int, val float64)) {
	for i, row := range m.rows {
		for _, e := range row {
			fn(i, int(e.col), e.val)
		}
	}
}
