// Package matrix implements a dense, double-precision matrix value type.
//
// Matrices are immutable by convention: every arithmetic operation returns a
// fresh *Matrix and never mutates its operands. This makes a *Matrix safe to
// share between goroutines for read-only use.
//
// Two multiplications are exposed under distinct names:
//   - MulElem: elementwise (Hadamard) product of same-shaped matrices
//   - MatMul: the linear-algebra product (m×n)·(n×p) → (m×p)
package matrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a rows×cols grid of float64 values.
//
// Storage is a flat row-major slice; the value at row i, column j lives at
// data[i*cols+j]. The zero value is not usable, construct with New,
// NewFunc or NewColMajor.
type Matrix struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

// New creates a zero-filled rows×cols matrix.
//
// Returns ErrBadShape if rows < 1 or cols < 1.
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("matrix.New: %w", err)
	}
	return newMatrix(rows, cols), nil
}

// NewFunc creates a rows×cols matrix whose cell (i, j) is gen(i, j).
//
// Example:
//
//	eye, _ := matrix.NewFunc(3, 3, func(i, j int) float64 {
//	    if i == j {
//	        return 1
//	    }
//	    return 0
//	})
func NewFunc(rows, cols int, gen func(i, j int) float64) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("matrix.NewFunc: %w", err)
	}
	m := newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = gen(i, j)
		}
	}
	return m, nil
}

// NewColMajor creates a rows×cols matrix from a flat literal given in
// column-major order: values[j*rows+i] becomes cell (i, j).
//
// Returns ErrSizeMismatch if len(values) != rows*cols.
//
// Example:
//
//	m, _ := matrix.NewColMajor(2, 2, 1, 2, 3, 4)
//	// m.At(0, 0) == 1, m.At(1, 0) == 2, m.At(0, 1) == 3, m.At(1, 1) == 4
func NewColMajor(rows, cols int, values ...float64) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("matrix.NewColMajor: %w", err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("matrix.NewColMajor: got %d values for a %dx%d matrix (want %d): %w",
			len(values), rows, cols, rows*cols, ErrSizeMismatch)
	}
	m := newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = values[j*rows+i]
		}
	}
	return m, nil
}

// Column creates an n×1 column vector holding values in order.
//
// Returns ErrBadShape if no values are given.
func Column(values ...float64) (*Matrix, error) {
	return NewColMajor(len(values), 1, values...)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return NewFunc(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})
}

// Must returns m or panics if err is non-nil.
//
// Intended for literals whose shape is known to be valid:
//
//	x := matrix.Must(matrix.Column(0.5, -1, 2))
func Must(m *Matrix, err error) *Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// newMatrix allocates without validation; callers guarantee rows, cols > 0.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the value at row i, column j.
//
// Panics if (i, j) is out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("Matrix.At: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether m and other have the same shape and identical cells.
//
// Cells are compared with ==, so a matrix holding NaN is never equal to
// anything, itself included.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !m.SameShape(other) {
		return false
	}
	return floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and every pair
// of cells is within tol (absolute or relative).
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if other == nil || !m.SameShape(other) {
		return false
	}
	return floats.EqualApprox(m.data, other.data, tol)
}

// Hash returns a structural hash consistent with Equal.
func (m *Matrix) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.rows))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.cols))
	_, _ = h.Write(buf[:])
	for _, v := range m.data {
		if v == 0 {
			v = 0 // -0 == +0 under Equal
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the matrix row by row, e.g. "[[1, 3], [2, 4]]".
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
