package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by matrix constructors and operations.
//
// Callers match them with errors.Is; the returned errors carry the
// offending shapes as context.
var (
	// ErrBadShape is returned when a requested shape has rows < 1 or cols < 1.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch is returned when operand shapes are incompatible,
	// e.g. Add on different shapes or MatMul where a.Cols() != b.Rows().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrSizeMismatch is returned when a flat literal does not hold
	// exactly rows*cols values.
	ErrSizeMismatch = errors.New("matrix: size mismatch")
)

// shapeErrorf wraps ErrShapeMismatch with the method name and both shapes.
// A nil b is reported as a nil operand.
func shapeErrorf(method string, a, b *Matrix) error {
	if b == nil {
		return fmt.Errorf("Matrix.%s: %dx%d vs nil: %w", method, a.rows, a.cols, ErrShapeMismatch)
	}
	return fmt.Errorf("Matrix.%s: %dx%d vs %dx%d: %w", method, a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
}

// validateShape reports ErrBadShape for non-positive dimensions.
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%dx%d (must be > 0): %w", rows, cols, ErrBadShape)
	}
	return nil
}
