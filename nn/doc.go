// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward network.
//
// # Overview
//
// A Network is built from a list of layer widths. Every consecutive pair of
// widths becomes one Layer holding a weight matrix, a bias vector and an
// activation function:
//
//	layer i: a_i = f_i(W_i · a_{i-1} + b_i),  a_{-1} = input
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/activation"
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, err := nn.New([]int{3, 4, 2}, nn.WithFunction(activation.ReLU), nn.WithSeed(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    net.Randomize(1.0)
//
//	    out, err := net.Feedforward(matrix.Must(matrix.Column(0.1, 0.2, 0.3)))
//	}
//
// # Weights
//
// Layers start with zero weights and biases. Use Randomize, RandomizeXavier
// or SetWeights/SetBias before feeding meaningful inputs.
//
// # Concurrency
//
// Feedforward caches every layer's pre-activation and activation on the
// network. Use Copy to give each goroutine its own network.
package nn
