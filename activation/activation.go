// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the activation functions applied by network
// layers.
//
// Example:
//
//	fn, _ := activation.Parse("tanh")
//	y := fn.F(0.5)
//	dy := fn.DFWithValue(0.5, y)
package activation

import (
	"github.com/born-ml/mlp/internal/activation"
)

// Function identifies one of the supported activation functions.
type Function = activation.Function

// Supported activation functions.
const (
	Identity   = activation.Identity
	BinaryStep = activation.BinaryStep
	Sigmoid    = activation.Sigmoid
	TanH       = activation.TanH
	ArcTan     = activation.ArcTan
	Softsign   = activation.Softsign
	ReLU       = activation.ReLU
	Sinusoid   = activation.Sinusoid
	Sinc       = activation.Sinc
	Gaussian   = activation.Gaussian
)

// ErrUnknownFunction is returned by Parse for unsupported names.
var ErrUnknownFunction = activation.ErrUnknownFunction

// All returns every supported function.
func All() []Function {
	return activation.All()
}

// Parse looks a function up by its lowercase identifier.
func Parse(name string) (Function, error) {
	return activation.Parse(name)
}
