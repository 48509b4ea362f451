package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/activation"
)

// TestParse tests decoding of a full document.
func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
layers: [3, 4, 2]
activation: tanh
range: 0.5
seed: 7
`))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2}, cfg.Layers)
	assert.Equal(t, activation.TanH, cfg.Activation)
	assert.Equal(t, 0.5, cfg.Range)
	assert.Equal(t, int64(7), cfg.Seed)
}

// TestParseDefaults tests that missing keys keep their defaults.
func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Parse([]byte("layers: [5, 1]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1}, cfg.Layers)
	assert.Equal(t, activation.Sigmoid, cfg.Activation)
}

// TestParseErrors tests rejected documents.
func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown activation": "activation: softmax\n",
		"unknown key":        "hidden: 3\n",
		"too few layers":     "layers: [3]\n",
		"zero layer":         "layers: [3, 0, 1]\n",
		"negative range":     "range: -1\n",
		"bad yaml":           "layers: [1, 2\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("layers: [1]\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

// TestLoad tests reading from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: [2, 3]\nactivation: relu\nseed: 1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, activation.ReLU, cfg.Activation)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestMarshalRoundTrip tests that Marshal output parses back.
func TestMarshalRoundTrip(t *testing.T) {
	cfg := Network{Layers: []int{4, 3, 2}, Activation: activation.BinaryStep, Range: 2, Seed: 3}
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "activation: binary_step")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

// TestBuild tests network construction from a configuration.
func TestBuild(t *testing.T) {
	cfg := Network{Layers: []int{3, 2}, Activation: activation.Softsign, Range: 0.1, Seed: 5}
	net, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "3 -[softsign]-> 2", net.String())
	assert.LessOrEqual(t, net.Layer(0).Weights().Max(), 0.1)
	assert.NotZero(t, net.Layer(0).Weights().Max()-net.Layer(0).Weights().Min())

	again, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, net.Layer(0).Weights().Equal(again.Layer(0).Weights()), "same seed, same weights")

	cfg.Range = 0
	zero, err := cfg.Build()
	require.NoError(t, err)
	assert.Zero(t, zero.Layer(0).Weights().Sum())

	_, err = Network{}.Build()
	require.ErrorIs(t, err, ErrInvalid)
}
