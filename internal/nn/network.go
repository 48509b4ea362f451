package nn

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
)

// Network is a fully connected feedforward network.
//
// A network built from sizes [n0, n1, ..., nL] holds L layers; layer i maps
// a column vector of n_i values to one of n_{i+1} values. Weights and biases
// start at zero and are set with Randomize or SetWeights/SetBias.
//
// Feedforward overwrites the per-layer caches (NetInput, Output), so a
// Network must not be fed from several goroutines at once.
//
// Example:
//
//	net, _ := nn.New([]int{3, 4, 2}, nn.WithFunction(activation.TanH), nn.WithSeed(1))
//	net.Randomize(1.0)
//	out, err := net.Feedforward(matrix.Must(matrix.Column(0.1, 0.2, 0.3)))
type Network struct {
	sizes  []int
	layers []*Layer
	rng    *rand.Rand
}

// New creates a network with one zero-initialized layer between each pair
// of consecutive sizes.
//
// Parameters:
//   - sizes: Layer widths, input first; at least two, each >= 1
//   - opts: WithFunction (default Sigmoid), WithSeed or WithRand
//
// Returns ErrInvalidLayerSizes or ErrInvalidFunction on bad arguments.
func New(sizes []int, opts ...Option) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("nn.New: got %d sizes, need at least 2: %w", len(sizes), ErrInvalidLayerSizes)
	}
	for i, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("nn.New: size %d at index %d: %w", n, i, ErrInvalidLayerSizes)
		}
	}
	o := gatherOptions(opts)

	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layer, err := NewLayer(sizes[i], sizes[i+1], o.fn)
		if err != nil {
			return nil, fmt.Errorf("nn.New: layer %d: %w", i, err)
		}
		layers[i] = layer
	}

	return &Network{
		sizes:  append([]int(nil), sizes...),
		layers: layers,
		rng:    o.rng,
	}, nil
}

// Sizes returns a copy of the layer widths the network was built from.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// NumLayers returns the number of weight layers (len(Sizes()) - 1).
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// InFeatures returns the expected input height.
func (n *Network) InFeatures() int {
	return n.sizes[0]
}

// OutFeatures returns the output height.
func (n *Network) OutFeatures() int {
	return n.sizes[len(n.sizes)-1]
}

// Layer returns layer i.
//
// Panics if i is out of range.
func (n *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of range [0, %d)", i, len(n.layers)))
	}
	return n.layers[i]
}

func (n *Network) layer(method string, i int) (*Layer, error) {
	if i < 0 || i >= len(n.layers) {
		return nil, fmt.Errorf("Network.%s: index %d, have %d layers: %w", method, i, len(n.layers), ErrLayerIndex)
	}
	return n.layers[i], nil
}

// SetWeights replaces the weights of layer i.
//
// Returns ErrLayerIndex, or matrix.ErrShapeMismatch if w is not
// [Sizes()[i+1], Sizes()[i]].
func (n *Network) SetWeights(i int, w *matrix.Matrix) error {
	l, err := n.layer("SetWeights", i)
	if err != nil {
		return err
	}
	return l.SetWeights(w)
}

// SetBias replaces the bias of layer i.
//
// Returns ErrLayerIndex, or matrix.ErrShapeMismatch if b is not
// [Sizes()[i+1], 1].
func (n *Network) SetBias(i int, b *matrix.Matrix) error {
	l, err := n.layer("SetBias", i)
	if err != nil {
		return err
	}
	return l.SetBias(b)
}

// SetFunction assigns fn to layer i only.
func (n *Network) SetFunction(i int, fn activation.Function) error {
	l, err := n.layer("SetFunction", i)
	if err != nil {
		return err
	}
	return l.SetFunction(fn)
}

// Randomize replaces every weight and bias with independent values drawn
// uniformly from [-bound, bound).
func (n *Network) Randomize(bound float64) {
	n.RandomizeWith(n.rng, bound)
}

// RandomizeWith is Randomize drawing from rng instead of the network's own
// source.
func (n *Network) RandomizeWith(rng *rand.Rand, bound float64) {
	for _, l := range n.layers {
		l.weights = mustUniform(l.outFeatures, l.inFeatures, bound, rng)
		l.bias = mustUniform(l.outFeatures, 1, bound, rng)
	}
}

// RandomizeXavier draws each layer's weights from the Xavier/Glorot range of
// that layer and resets every bias to zero.
func (n *Network) RandomizeXavier() {
	for _, l := range n.layers {
		l.weights = mustUniform(l.outFeatures, l.inFeatures, XavierBound(l.inFeatures, l.outFeatures), n.rng)
		l.bias = matrix.Must(matrix.New(l.outFeatures, 1))
	}
}

// mustUniform wraps Uniform for shapes already validated by New.
func mustUniform(rows, cols int, bound float64, rng *rand.Rand) *matrix.Matrix {
	m, err := Uniform(rows, cols, bound, rng)
	if err != nil {
		panic(err) // Layer shapes are validated at construction
	}
	return m
}

// Feedforward runs one forward pass and returns the output of the last
// layer.
//
// Layer 0 receives input; layer i > 0 receives the activation of layer i-1.
// Every layer caches its pre-activation and activation, replacing the values
// of the previous call.
//
// Input shape: [Sizes()[0], 1]
// Output shape: [Sizes()[len-1], 1]
//
// Returns matrix.ErrShapeMismatch if input is not a column vector of the
// input width. No cache is modified in that case.
func (n *Network) Feedforward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input == nil || input.Cols() != 1 {
		return nil, fmt.Errorf("Network.Feedforward: want %dx1 input, got %s: %w",
			n.sizes[0], shapeOf(input), matrix.ErrShapeMismatch)
	}

	output := input
	for i, l := range n.layers {
		var err error
		output, err = l.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("Network.Feedforward: layer %d: %w", i, err)
		}
	}
	return output, nil
}

// Forward implements Module; it is the same as Feedforward.
func (n *Network) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return n.Feedforward(input)
}

// Output returns the activation of the last layer from the most recent
// Feedforward, or nil before the first call.
func (n *Network) Output() *matrix.Matrix {
	return n.layers[len(n.layers)-1].output
}

// Parameters returns all weights and biases, prefixed with their layer
// index ("0.weight", "0.bias", "1.weight", ...).
func (n *Network) Parameters() []Parameter {
	params := make([]Parameter, 0, 2*len(n.layers))
	for i, l := range n.layers {
		for _, p := range l.Parameters() {
			params = append(params, Parameter{Name: strconv.Itoa(i) + "." + p.Name, Value: p.Value})
		}
	}
	return params
}

// Copy returns an independent network with the same sizes, weights,
// biases, cached values and per-layer functions.
//
// Copy only reads n: the copy gets a fresh time-seeded source of
// randomness and n's own random stream is left untouched. Copy may be
// called from several goroutines at once as long as none of them mutates n.
func (n *Network) Copy() *Network {
	layers := make([]*Layer, len(n.layers))
	for i, l := range n.layers {
		layers[i] = l.clone()
	}
	return &Network{
		sizes:  append([]int(nil), n.sizes...),
		layers: layers,
		rng:    newTimeSeededRand(),
	}
}

// String summarizes the architecture, e.g. "3 -[sigmoid]-> 4 -[relu]-> 2".
func (n *Network) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n.sizes[0]))
	for i, l := range n.layers {
		sb.WriteString(" -[")
		sb.WriteString(l.fn.String())
		sb.WriteString("]-> ")
		sb.WriteString(strconv.Itoa(n.sizes[i+1]))
	}
	return sb.String()
}
