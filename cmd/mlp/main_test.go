package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "mlp "+version+"\n", out.String())
}

func TestRunFunctions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"functions"}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+len(activation.All()))
	assert.True(t, strings.HasPrefix(lines[3], "sigmoid"))
	assert.Contains(t, lines[3], "0.500000")
}

func TestRunUsage(t *testing.T) {
	require.ErrorIs(t, run(nil, &bytes.Buffer{}), errUsage)
	require.ErrorIs(t, run([]string{"train"}, &bytes.Buffer{}), errUsage)
}

func TestRunNetworkZeroWeights(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"run", "-layers", "3,4,2", "-activation", "identity", "-range", "0", "-input", "1, 2, 3"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "network:    3 -[identity]-> 4 -[identity]-> 2")
	assert.Contains(t, out.String(), "parameters: 26")
	assert.Contains(t, out.String(), "input:      [[1, 2, 3]]")
	assert.Contains(t, out.String(), "output:     [[0, 0]]")
}

func TestRunNetworkConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: [2, 1]\nactivation: sigmoid\nrange: 0\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"run", "-config", path, "-input", "0.3,0.7"}, &out))
	assert.Contains(t, out.String(), "output:     [[0.5]]")
}

func TestRunNetworkSeeded(t *testing.T) {
	args := []string{"run", "-layers", "2,3,1", "-seed", "17", "-range", "1", "-input", "0.5,-0.5"}

	var a, b bytes.Buffer
	require.NoError(t, run(args, &a))
	require.NoError(t, run(args, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRunNetworkErrors(t *testing.T) {
	tests := map[string][]string{
		"bad layers":     {"run", "-layers", "3,x", "-input", "1"},
		"bad activation": {"run", "-activation", "softmax", "-input", "1,2"},
		"bad input":      {"run", "-input", "1,abc"},
		"empty input":    {"run"},
		"missing config": {"run", "-config", filepath.Join(t.TempDir(), "nope.yaml"), "-input", "1,2"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, run(args, &bytes.Buffer{}))
		})
	}

	err := run([]string{"run", "-layers", "3,1", "-input", "1,2"}, &bytes.Buffer{})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
