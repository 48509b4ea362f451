package matrix

// MapIndexed returns a new matrix whose cell (i, j) is fn(m[i,j], i, j).
func (m *Matrix) MapIndexed(fn func(x float64, i, j int) float64) *Matrix {
	result := newMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			k := i*m.cols + j
			result.data[k] = fn(m.data[k], i, j)
		}
	}
	return result
}

// Map returns a new matrix with fn applied to every cell.
func (m *Matrix) Map(fn func(x float64) float64) *Matrix {
	result := newMatrix(m.rows, m.cols)
	for k, v := range m.data {
		result.data[k] = fn(v)
	}
	return result
}

// zipWith combines two same-shaped matrices cell by cell.
func (m *Matrix) zipWith(method string, other *Matrix, fn func(a, b float64) float64) (*Matrix, error) {
	if other == nil || !m.SameShape(other) {
		return nil, shapeErrorf(method, m, other)
	}
	result := newMatrix(m.rows, m.cols)
	for k := range m.data {
		result.data[k] = fn(m.data[k], other.data[k])
	}
	return result, nil
}

// Add returns m + other elementwise.
//
// Returns ErrShapeMismatch if other is nil or the shapes differ.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.zipWith("Add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns m - other elementwise.
//
// Returns ErrShapeMismatch if the shapes differ.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.zipWith("Sub", other, func(a, b float64) float64 { return a - b })
}

// MulElem returns the elementwise (Hadamard) product of m and other.
// It is not the matrix product; see MatMul.
//
// Returns ErrShapeMismatch if the shapes differ.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) {
	return m.zipWith("MulElem", other, func(a, b float64) float64 { return a * b })
}

// AddScalar returns m with s added to every cell.
func (m *Matrix) AddScalar(s float64) *Matrix {
	return m.Map(func(x float64) float64 { return x + s })
}

// SubScalar returns m with s subtracted from every cell.
func (m *Matrix) SubScalar(s float64) *Matrix {
	return m.Map(func(x float64) float64 { return x - s })
}

// Scale returns m with every cell multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	return m.Map(func(x float64) float64 { return x * s })
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	return m.Map(func(x float64) float64 { return -x })
}

// MatMul computes the matrix product m · other.
//
// Shapes: (r×n) · (n×c) → (r×c), cell (i, j) = Σ_k m[i,k] * other[k,j].
//
// Returns ErrShapeMismatch if other is nil or m.Cols() != other.Rows().
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if other == nil || m.cols != other.rows {
		return nil, shapeErrorf("MatMul", m, other)
	}
	result := newMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * other.data[k*other.cols+j]
			}
			result.data[i*other.cols+j] = sum
		}
	}
	return result, nil
}

// Transposed returns a new cols×rows matrix with result[i,j] = m[j,i].
func (m *Matrix) Transposed() *Matrix {
	result := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return result
}
