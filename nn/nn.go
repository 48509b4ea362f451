// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Module is implemented by Layer and Network.
type Module = nn.Module

// Parameter is a named weight or bias matrix.
type Parameter = nn.Parameter

// Layer is one fully connected layer.
type Layer = nn.Layer

// Network is a stack of fully connected layers.
type Network = nn.Network

// Option configures a Network at construction time.
type Option = nn.Option

// Errors returned by construction and layer assignment.
var (
	ErrInvalidLayerSizes = nn.ErrInvalidLayerSizes
	ErrLayerIndex        = nn.ErrLayerIndex
	ErrInvalidFunction   = nn.ErrInvalidFunction
)

// DefaultFunction is used by every layer unless WithFunction is given.
const DefaultFunction = nn.DefaultFunction

// New creates a zero-initialized network from layer widths, input first.
//
// Example:
//
//	net, err := nn.New([]int{784, 128, 10})
func New(sizes []int, opts ...Option) (*Network, error) {
	return nn.New(sizes, opts...)
}

// NewLayer creates a standalone zero-initialized layer.
func NewLayer(inFeatures, outFeatures int, fn activation.Function) (*Layer, error) {
	return nn.NewLayer(inFeatures, outFeatures, fn)
}

// WithFunction assigns fn to every layer.
func WithFunction(fn activation.Function) Option {
	return nn.WithFunction(fn)
}

// WithSeed makes randomization reproducible.
func WithSeed(seed int64) Option {
	return nn.WithSeed(seed)
}

// WithRand makes randomization draw from rng.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// Uniform creates a matrix of values drawn uniformly from [-bound, bound).
func Uniform(rows, cols int, bound float64, rng *rand.Rand) (*matrix.Matrix, error) {
	return nn.Uniform(rows, cols, bound, rng)
}

// XavierBound returns sqrt(6/(fanIn+fanOut)).
func XavierBound(fanIn, fanOut int) float64 {
	return nn.XavierBound(fanIn, fanOut)
}

// CountParameters returns the number of scalar values in params.
func CountParameters(params []Parameter) int {
	return nn.CountParameters(params)
}
