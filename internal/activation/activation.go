// Package activation implements the closed set of scalar activation functions
// used by the network layers.
//
// A Function is a small tagged value (one of ten constants) that dispatches to
// a fixed table of value/derivative pairs. Functions are pure and stateless,
// so one value can be shared by any number of layers and goroutines.
//
// Supported functions:
//   - Identity:   f(x) = x
//   - BinaryStep: f(x) = 0 if x < 0 else 1
//   - Sigmoid:    f(x) = 1 / (1 + exp(-x))
//   - TanH:       f(x) = tanh(x)
//   - ArcTan:     f(x) = atan(x)
//   - Softsign:   f(x) = x / (1 + |x|)
//   - ReLU:       f(x) = max(0, x)
//   - Sinusoid:   f(x) = sin(x)
//   - Sinc:       f(x) = sin(x) / x, with f(0) = 1
//   - Gaussian:   f(x) = exp(-x²)
package activation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownFunction is returned when parsing a name that is not one of the
// ten supported identifiers.
var ErrUnknownFunction = errors.New("activation: unknown function")

// Function identifies one activation function.
//
// The zero value is Identity.
type Function uint8

// Supported activation functions.
const (
	Identity Function = iota
	BinaryStep
	Sigmoid
	TanH
	ArcTan
	Softsign
	ReLU
	Sinusoid
	Sinc
	Gaussian

	numFunctions
)

// entry is the dispatch record for one Function.
//
// df receives the precomputed f(x) through fx when known is true; entries
// that do not benefit from it ignore both.
type entry struct {
	name string
	f    func(x float64) float64
	df   func(x, fx float64, known bool) float64
}

var table = [numFunctions]entry{
	Identity: {
		name: "identity",
		f:    func(x float64) float64 { return x },
		df:   func(_, _ float64, _ bool) float64 { return 1 },
	},
	BinaryStep: {
		name: "binary_step",
		f:    step,
		// Undefined at 0; defined as 0 everywhere.
		df: func(_, _ float64, _ bool) float64 { return 0 },
	},
	Sigmoid: {
		name: "sigmoid",
		f:    sigmoid,
		df: func(x, fx float64, known bool) float64 {
			if !known {
				fx = sigmoid(x)
			}
			return fx * (1 - fx)
		},
	},
	TanH: {
		name: "tanh",
		f:    math.Tanh,
		df: func(x, fx float64, known bool) float64 {
			if !known {
				fx = math.Tanh(x)
			}
			return 1 - fx*fx
		},
	},
	ArcTan: {
		name: "arctan",
		f:    math.Atan,
		df:   func(x, _ float64, _ bool) float64 { return 1 / (x*x + 1) },
	},
	Softsign: {
		name: "softsign",
		f:    func(x float64) float64 { return x / (1 + math.Abs(x)) },
		df: func(x, _ float64, _ bool) float64 {
			d := 1 + math.Abs(x)
			return 1 / (d * d)
		},
	},
	ReLU: {
		name: "relu",
		f: func(x float64) float64 {
			if x < 0 {
				return 0
			}
			return x
		},
		df: func(x, _ float64, _ bool) float64 { return step(x) },
	},
	Sinusoid: {
		name: "sinusoid",
		f:    math.Sin,
		df:   func(x, _ float64, _ bool) float64 { return math.Cos(x) },
	},
	Sinc: {
		name: "sinc",
		f:    sinc,
		df: func(x, fx float64, known bool) float64 {
			if x == 0 {
				return 0
			}
			if !known {
				fx = math.Sin(x) / x
			}
			return math.Cos(x)/x - fx/x
		},
	},
	Gaussian: {
		name: "gaussian",
		f:    gaussian,
		df: func(x, fx float64, known bool) float64 {
			if !known {
				fx = gaussian(x)
			}
			return -2 * x * fx
		},
	},
}

func step(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func gaussian(x float64) float64 {
	return math.Exp(-x * x)
}

// All returns every supported function in declaration order.
func All() []Function {
	fns := make([]Function, numFunctions)
	for i := range fns {
		fns[i] = Function(i)
	}
	return fns
}

// Valid reports whether fn is one of the supported functions.
func (fn Function) Valid() bool {
	return fn < numFunctions
}

// F returns the activation value f(x).
//
// Panics if fn is not Valid.
func (fn Function) F(x float64) float64 {
	return fn.entry().f(x)
}

// DF returns the derivative f'(x), computing f(x) itself where needed.
//
// Panics if fn is not Valid.
func (fn Function) DF(x float64) float64 {
	return fn.entry().df(x, 0, false)
}

// DFWithValue returns the derivative f'(x) given fx, the already computed
// f(x). Functions whose derivative is expressed through f(x) (Sigmoid, TanH,
// Sinc, Gaussian) use fx instead of recomputing it; the others ignore it.
//
// The result equals DF(x) whenever fx == F(x).
//
// Panics if fn is not Valid.
func (fn Function) DFWithValue(x, fx float64) float64 {
	return fn.entry().df(x, fx, true)
}

// String returns the lowercase identifier, e.g. "sigmoid" or "binary_step".
func (fn Function) String() string {
	if !fn.Valid() {
		return fmt.Sprintf("activation(%d)", uint8(fn))
	}
	return table[fn].name
}

func (fn Function) entry() *entry {
	if !fn.Valid() {
		panic(fmt.Sprintf("activation: invalid function %d", uint8(fn)))
	}
	return &table[fn]
}

// Parse returns the Function whose identifier is name.
//
// Returns ErrUnknownFunction for anything else.
func Parse(name string) (Function, error) {
	for i := range table {
		if table[i].name == name {
			return Function(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// MarshalText implements encoding.TextMarshaler.
func (fn Function) MarshalText() ([]byte, error) {
	if !fn.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFunction, uint8(fn))
	}
	return []byte(fn.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fn *Function) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*fn = parsed
	return nil
}
