// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/matrix"
)

func ExampleNewColMajor() {
	m := matrix.Must(matrix.NewColMajor(2, 3, 1, 2, 3, 4, 5, 6))
	fmt.Println(m)
	fmt.Println(m.Transposed())

	_, err := matrix.NewColMajor(2, 2, 1, 2)
	fmt.Println(errors.Is(err, matrix.ErrSizeMismatch))
	// Output:
	// [[1, 3, 5], [2, 4, 6]]
	// [[1, 2], [3, 4], [5, 6]]
	// true
}

func ExampleMatrix_MatMul() {
	a := matrix.Must(matrix.NewColMajor(2, 2, 1, 2, 3, 4))
	x := matrix.Must(matrix.Column(1, 1))

	y, _ := a.MatMul(x)
	fmt.Println(y)

	h, _ := a.MulElem(a)
	fmt.Println(h)

	_, err := x.MatMul(a)
	fmt.Println(errors.Is(err, matrix.ErrShapeMismatch))
	// Output:
	// [[4], [6]]
	// [[1, 9], [4, 16]]
	// true
}
