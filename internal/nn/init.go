package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Uniform creates a rows×cols matrix of independent values drawn uniformly
// from [-bound, bound).
//
// Parameters:
//   - rows, cols: Shape of the matrix (must be > 0)
//   - bound: Half-width of the interval
//   - rng: Source of randomness
//
// Returns the random matrix or matrix.ErrBadShape.
func Uniform(rows, cols int, bound float64, rng *rand.Rand) (*matrix.Matrix, error) {
	return matrix.NewFunc(rows, cols, func(_, _ int) float64 {
		//nolint:gosec // G404: weight initialization is not security-critical
		return (rng.Float64()*2.0 - 1.0) * bound
	})
}

// XavierBound returns the Xavier/Glorot uniform bound sqrt(6/(fanIn+fanOut)).
//
// Passing it to Randomize gives every layer the same bound; use
// RandomizeXavier for a per-layer bound.
func XavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+fanOut))
}
