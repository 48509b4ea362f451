package nn

import (
	"math/rand"
	"time"

	"github.com/born-ml/mlp/internal/activation"
)

// DefaultFunction is the activation function assigned to every layer when
// no WithFunction option is given.
const DefaultFunction = activation.Sigmoid

// Option configures a Network at construction time.
type Option func(*options)

type options struct {
	fn  activation.Function
	rng *rand.Rand
}

func defaultOptions() options {
	return options{fn: DefaultFunction}
}

// WithFunction assigns fn to every layer.
func WithFunction(fn activation.Function) Option {
	return func(o *options) {
		o.fn = fn
	}
}

// WithSeed makes Randomize deterministic by seeding the network's source of
// randomness.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: reproducible weights
	}
}

// WithRand makes Randomize draw from rng. The network takes ownership of
// rng; it must not be shared with other goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newTimeSeededRand()
	}
	return o
}

func newTimeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // G404: not security-critical
}
