package factory

import (
	"math"

	"github.com/maisem/aoc2025"
)

// Epsilon is the tolerance for treating a float as zero or as an integer
// during elimination and search.
const Epsilon = 1e-9

// System is the row-reduced form of a machine's joltage equations
//
//	sum over buttons b of Weight(b, i) * presses[b] = Joltages[i]
//
// Row k of Matrix is the pivot row of button Dependent[k]. Buttons in
// Independent are free: any press counts for them determine the dependent
// presses.
type System struct {
	// Matrix is the reduced augmented matrix, Rows x (Cols+1). The last
	// column holds the targets.
	Matrix [][]float64

	Rows, Cols int

	Dependent   []int
	Independent []int
}

// augmented returns the matrix [A | b] of m's joltage equations: one row per
// indicator, one column per button, and the joltage targets last. m must be
// valid.
func augmented(m *Machine) [][]float64 {
	rows, cols := m.Indicators(), len(m.Buttons)
	a := makeMatrix(rows, cols+1)
	for i := range a {
		for b := 0; b < cols; b++ {
			a[i][b] = float64(m.Weight(b, i))
		}
		a[i][cols] = float64(m.Joltages[i])
	}
	return a
}

// Reduce builds and reduces the joltage equations of m. It returns
// ErrMalformed if m is invalid.
func Reduce(m *Machine) (*System, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return ReduceMatrix(augmented(m), len(m.Buttons)), nil
}

// ReduceMatrix runs Gauss-Jordan elimination with partial pivoting on a copy
// of the augmented matrix a, which has cols variable columns plus one target
// column. a is not modified.
func ReduceMatrix(a [][]float64, cols int) *System {
	s := &System{
		Matrix:      makeMatrix(len(a), cols+1),
		Rows:        len(a),
		Cols:        cols,
		Dependent:   make([]int, 0, min(len(a), cols)),
		Independent: make([]int, 0, cols),
	}
	for i, row := range a {
		copy(s.Matrix[i], row)
	}
	d := s.Matrix

	pivot := 0
	for col := 0; col < cols; col++ {
		if pivot == s.Rows {
			s.Independent = append(s.Independent, col)
			continue
		}
		best := pivot
		for r := pivot + 1; r < s.Rows; r++ {
			if math.Abs(d[r][col]) > math.Abs(d[best][col]) {
				best = r
			}
		}
		if aoc.NearZero(d[best][col], Epsilon) {
			s.Independent = append(s.Independent, col)
			continue
		}
		d[pivot], d[best] = d[best], d[pivot]
		s.Dependent = append(s.Dependent, col)

		pv := d[pivot][col]
		for c := col; c <= cols; c++ {
			d[pivot][c] /= pv
		}
		for r := 0; r < s.Rows; r++ {
			if r == pivot {
				continue
			}
			f := d[r][col]
			if aoc.NearZero(f, Epsilon) {
				continue
			}
			for c := col; c <= cols; c++ {
				d[r][c] -= f * d[pivot][c]
			}
		}
		pivot++
	}
	return s
}

// Rank returns the number of dependent buttons.
func (s *System) Rank() int {
	return len(s.Dependent)
}

// Consistent reports whether the equations can hold at all. Rows past the
// rank have no variables left, so their targets must be zero.
func (s *System) Consistent() bool {
	for r := s.Rank(); r < s.Rows; r++ {
		if !aoc.NearZero(s.Matrix[r][s.Cols], Epsilon) {
			return false
		}
	}
	return true
}

// makeMatrix allocates a rows x cols matrix backed by a single slice.
func makeMatrix(rows, cols int) [][]float64 {
	buf := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}
