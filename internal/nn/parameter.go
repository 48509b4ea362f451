package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Parameter is a named weight or bias matrix of a layer.
//
// Names follow the "<layer>.<kind>" convention, e.g. "0.weight" or "1.bias".
type Parameter struct {
	Name  string
	Value *matrix.Matrix
}

// NumElements returns rows*cols of the parameter value.
func (p Parameter) NumElements() int {
	return p.Value.Rows() * p.Value.Cols()
}

// CountParameters returns the total number of scalar values held by params.
func CountParameters(params []Parameter) int {
	n := 0
	for _, p := range params {
		n += p.NumElements()
	}
	return n
}
