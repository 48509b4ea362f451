// Package nn implements a fully connected feedforward network on top of the
// matrix package.
//
// This package provides:
//   - Module interface: anything that maps a column vector to a column vector
//   - Parameter: a named weight or bias matrix
//   - Layer: weights, bias and activation function of one dense layer
//   - Network: an ordered stack of layers driven by Feedforward
//   - Uniform: random initialization in [-bound, bound]
//
// Layers and networks cache the values of their last forward pass, so a
// single instance must not be fed from several goroutines at once.
package nn

import (
	"errors"

	"github.com/born-ml/mlp/internal/matrix"
)

// Errors returned by network construction and layer assignment.
var (
	// ErrInvalidLayerSizes is returned when fewer than two sizes are given
	// or any size is < 1.
	ErrInvalidLayerSizes = errors.New("nn: invalid layer sizes")

	// ErrLayerIndex is returned when a layer index is out of range.
	ErrLayerIndex = errors.New("nn: layer index out of range")

	// ErrInvalidFunction is returned when assigning an activation function
	// outside the supported set.
	ErrInvalidFunction = errors.New("nn: invalid activation function")
)

// Module is the common interface of Layer and Network.
//
// Forward maps an input column vector to an output column vector. It fails
// with matrix.ErrShapeMismatch if the input does not fit the module.
//
// Modules compose: a Network is itself a Module whose Forward chains the
// Forward of its layers.
type Module interface {
	// Forward computes the output for one input column vector.
	Forward(input *matrix.Matrix) (*matrix.Matrix, error)

	// Parameters returns the weight and bias matrices of this module.
	Parameters() []Parameter
}
