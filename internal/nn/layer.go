package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
)

// Layer is one fully connected layer.
//
// Performs the transformation: a = f(W · x + b)
// where:
//   - x is the input column vector with shape [in, 1]
//   - W is the weight matrix with shape [out, in]
//   - b is the bias column vector with shape [out, 1]
//   - f is the layer's activation function, applied elementwise
//
// The pre-activation W·x + b and the activation a of the last Forward call
// are cached on the layer and overwritten by the next call.
type Layer struct {
	inFeatures  int
	outFeatures int
	weights     *matrix.Matrix // [out, in]
	bias        *matrix.Matrix // [out, 1]
	fn          activation.Function

	netInput *matrix.Matrix // nil until the first Forward
	output   *matrix.Matrix // nil until the first Forward
}

// NewLayer creates a layer with zero weights and bias.
//
// Returns matrix.ErrBadShape if either size is < 1, or ErrInvalidFunction.
func NewLayer(inFeatures, outFeatures int, fn activation.Function) (*Layer, error) {
	if !fn.Valid() {
		return nil, fmt.Errorf("nn.NewLayer: %w: %s", ErrInvalidFunction, fn)
	}
	weights, err := matrix.New(outFeatures, inFeatures)
	if err != nil {
		return nil, fmt.Errorf("nn.NewLayer: weights: %w", err)
	}
	bias, err := matrix.New(outFeatures, 1)
	if err != nil {
		return nil, fmt.Errorf("nn.NewLayer: bias: %w", err)
	}
	return &Layer{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     weights,
		bias:        bias,
		fn:          fn,
	}, nil
}

// Forward computes f(W · input + b) and caches both the pre-activation and
// the activation.
//
// Input shape: [in, 1]
// Output shape: [out, 1]
//
// Returns matrix.ErrShapeMismatch if input.Rows() != in. On error the cached
// values are left untouched.
func (l *Layer) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input == nil {
		return nil, fmt.Errorf("Layer.Forward: nil input: %w", matrix.ErrShapeMismatch)
	}
	wx, err := l.weights.MatMul(input)
	if err != nil {
		return nil, err
	}
	net, err := wx.Add(l.bias)
	if err != nil {
		return nil, err
	}
	l.netInput = net
	l.output = net.Map(l.fn.F)
	return l.output, nil
}

// Parameters returns [weight, bias].
func (l *Layer) Parameters() []Parameter {
	return []Parameter{
		{Name: "weight", Value: l.weights},
		{Name: "bias", Value: l.bias},
	}
}

// InFeatures returns the input width of the layer.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width of the layer.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// Weights returns the [out, in] weight matrix.
func (l *Layer) Weights() *matrix.Matrix {
	return l.weights
}

// Bias returns the [out, 1] bias vector.
func (l *Layer) Bias() *matrix.Matrix {
	return l.bias
}

// Function returns the activation function of the layer.
func (l *Layer) Function() activation.Function {
	return l.fn
}

// NetInput returns the pre-activation W·x + b of the last Forward call,
// or nil if the layer has not been fed yet.
func (l *Layer) NetInput() *matrix.Matrix {
	return l.netInput
}

// Output returns the activation of the last Forward call, or nil if the
// layer has not been fed yet.
func (l *Layer) Output() *matrix.Matrix {
	return l.output
}

// SetWeights replaces the weight matrix.
//
// Returns matrix.ErrShapeMismatch unless w is [out, in].
func (l *Layer) SetWeights(w *matrix.Matrix) error {
	if w == nil || w.Rows() != l.outFeatures || w.Cols() != l.inFeatures {
		return fmt.Errorf("Layer.SetWeights: want %dx%d, got %s: %w",
			l.outFeatures, l.inFeatures, shapeOf(w), matrix.ErrShapeMismatch)
	}
	l.weights = w
	return nil
}

// SetBias replaces the bias vector.
//
// Returns matrix.ErrShapeMismatch unless b is [out, 1].
func (l *Layer) SetBias(b *matrix.Matrix) error {
	if b == nil || b.Rows() != l.outFeatures || b.Cols() != 1 {
		return fmt.Errorf("Layer.SetBias: want %dx1, got %s: %w",
			l.outFeatures, shapeOf(b), matrix.ErrShapeMismatch)
	}
	l.bias = b
	return nil
}

// SetFunction replaces the activation function.
//
// Returns ErrInvalidFunction if fn is not a supported function.
func (l *Layer) SetFunction(fn activation.Function) error {
	if !fn.Valid() {
		return fmt.Errorf("Layer.SetFunction: %w: %s", ErrInvalidFunction, fn)
	}
	l.fn = fn
	return nil
}

// clone returns a deep copy of l, caches included.
func (l *Layer) clone() *Layer {
	c := &Layer{
		inFeatures:  l.inFeatures,
		outFeatures: l.outFeatures,
		weights:     l.weights.Clone(),
		bias:        l.bias.Clone(),
		fn:          l.fn,
	}
	if l.netInput != nil {
		c.netInput = l.netInput.Clone()
	}
	if l.output != nil {
		c.output = l.output.Clone()
	}
	return c
}

func shapeOf(m *matrix.Matrix) string {
	if m == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
