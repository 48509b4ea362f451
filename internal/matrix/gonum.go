package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// *Matrix satisfies gonum's read-only matrix interface, so it can be passed
// directly to gonum routines (mat.Formatted, mat.Dense.Mul, ...).
var _ mat.Matrix = (*Matrix)(nil)

// Dims returns the number of rows and columns (gonum mat.Matrix).
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// T returns an implicit transpose view (gonum mat.Matrix).
//
// Unlike Transposed, no data is copied.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Dense copies m into a new gonum *mat.Dense.
func (m *Matrix) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

// FromMat copies any gonum matrix into a new *Matrix.
//
// Returns ErrBadShape for empty matrices (e.g. a zero-value mat.Dense).
func FromMat(a mat.Matrix) (*Matrix, error) {
	r, c := a.Dims()
	if err := validateShape(r, c); err != nil {
		return nil, fmt.Errorf("matrix.FromMat: %w", err)
	}
	m := newMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}
	return m, nil
}

// Sum returns the sum of all cells.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Max returns the largest cell value.
func (m *Matrix) Max() float64 {
	return floats.Max(m.data)
}

// Min returns the smallest cell value.
func (m *Matrix) Min() float64 {
	return floats.Min(m.data)
}

// ArgMax returns the (row, col) of the largest cell. Ties resolve to the
// first cell in row-major order.
func (m *Matrix) ArgMax() (i, j int) {
	k := floats.MaxIdx(m.data)
	return k / m.cols, k % m.cols
}
