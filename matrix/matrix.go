// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public dense matrix type used by the network.
//
// Matrices are immutable by convention: every operation returns a new
// matrix. The elementwise product (MulElem) and the matrix product (MatMul)
// are separate methods.
//
// Example:
//
//	a := matrix.Must(matrix.NewColMajor(2, 2, 1, 2, 3, 4)) // [[1, 3], [2, 4]]
//	x := matrix.Must(matrix.Column(1, 1))
//	y, err := a.MatMul(x) // [[4], [6]]
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense rows×cols matrix of float64 values.
type Matrix = matrix.Matrix

// Errors returned by constructors and operations; match with errors.Is.
var (
	ErrBadShape      = matrix.ErrBadShape
	ErrShapeMismatch = matrix.ErrShapeMismatch
	ErrSizeMismatch  = matrix.ErrSizeMismatch
)

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// NewFunc creates a rows×cols matrix with cell (i, j) set to gen(i, j).
func NewFunc(rows, cols int, gen func(i, j int) float64) (*Matrix, error) {
	return matrix.NewFunc(rows, cols, gen)
}

// NewColMajor creates a rows×cols matrix from values in column-major order.
func NewColMajor(rows, cols int, values ...float64) (*Matrix, error) {
	return matrix.NewColMajor(rows, cols, values...)
}

// Column creates a column vector.
func Column(values ...float64) (*Matrix, error) {
	return matrix.Column(values...)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return matrix.Identity(n)
}

// FromMat copies a gonum matrix.
func FromMat(a mat.Matrix) (*Matrix, error) {
	return matrix.FromMat(a)
}

// Must panics if err is non-nil and returns m otherwise.
func Must(m *Matrix, err error) *Matrix {
	return matrix.Must(m, err)
}
