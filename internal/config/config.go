// Package config loads the YAML description of a network used by the mlp
// command.
//
// Example document:
//
//	layers: [3, 4, 2]
//	activation: sigmoid
//	range: 1.0
//	seed: 42
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/nn"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid network configuration")

// Network describes how to build and initialize a network.
type Network struct {
	// Layers lists the layer widths, input first.
	Layers []int `yaml:"layers"`

	// Activation is applied by every layer.
	Activation activation.Function `yaml:"activation"`

	// Range is the half-width passed to Randomize. Zero keeps the
	// zero-initialized weights.
	Range float64 `yaml:"range"`

	// Seed seeds the random source. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// Default returns a 2-2-1 sigmoid network randomized in [-1, 1].
func Default() Network {
	return Network{
		Layers:     []int{2, 2, 1},
		Activation: nn.DefaultFunction,
		Range:      1,
	}
}

// Parse decodes a YAML document on top of Default.
//
// Unknown keys are rejected; an empty document yields Default.
func Parse(data []byte) (Network, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Network{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Network{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Network{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration without building a network.
func (c Network) Validate() error {
	if len(c.Layers) < 2 {
		return fmt.Errorf("%w: need at least 2 layer sizes, got %v", ErrInvalid, c.Layers)
	}
	for _, n := range c.Layers {
		if n < 1 {
			return fmt.Errorf("%w: layer size %d in %v", ErrInvalid, n, c.Layers)
		}
	}
	if !c.Activation.Valid() {
		return fmt.Errorf("%w: activation %s", ErrInvalid, c.Activation)
	}
	if c.Range < 0 {
		return fmt.Errorf("%w: negative range %v", ErrInvalid, c.Range)
	}
	return nil
}

// Options converts the configuration into network options.
func (c Network) Options() []nn.Option {
	opts := []nn.Option{nn.WithFunction(c.Activation)}
	if c.Seed != 0 {
		opts = append(opts, nn.WithSeed(c.Seed))
	}
	return opts
}

// Marshal encodes the configuration as YAML.
func (c Network) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Build creates the network and randomizes it when Range > 0.
func (c Network) Build() (*nn.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	net, err := nn.New(c.Layers, c.Options()...)
	if err != nil {
		return nil, err
	}
	if c.Range > 0 {
		net.Randomize(c.Range)
	}
	return net, nil
}
