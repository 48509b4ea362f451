// Package main provides the mlp command: build a feedforward network,
// randomize it and evaluate one input vector.
//
// Usage:
//
//	mlp version
//	mlp functions
//	mlp run [-config net.yaml] [-layers 3,4,2] [-activation sigmoid]
//	        [-range 1] [-seed 42] -input 0.1,0.2,0.3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

const version = "v0.1.0"

var errUsage = errors.New("usage: mlp <version|functions|run> [flags]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlp: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		_, err := fmt.Fprintf(stdout, "mlp %s\n", version)
		return err
	case "functions":
		return printFunctions(stdout)
	case "run":
		return runNetwork(args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

// printFunctions lists every activation function with sample values.
func printFunctions(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-12s %10s %10s %10s\n", "name", "f(0)", "f(1)", "df(1)"); err != nil {
		return err
	}
	for _, fn := range activation.All() {
		if _, err := fmt.Fprintf(w, "%-12s %10.6f %10.6f %10.6f\n", fn, fn.F(0), fn.F(1), fn.DF(1)); err != nil {
			return err
		}
	}
	return nil
}

func runNetwork(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "YAML network description")
	layers := fs.String("layers", "", "Comma-separated layer sizes, input first (overrides config)")
	fnName := fs.String("activation", "", "Activation function (overrides config)")
	bound := fs.Float64("range", -1, "Randomize weights in [-range, range] (overrides config)")
	seed := fs.Int64("seed", 0, "Random seed (overrides config, 0 = keep)")
	input := fs.String("input", "", "Comma-separated input vector")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *layers != "" {
		sizes, err := parseInts(*layers)
		if err != nil {
			return fmt.Errorf("-layers: %w", err)
		}
		cfg.Layers = sizes
	}
	if *fnName != "" {
		fn, err := activation.Parse(*fnName)
		if err != nil {
			return fmt.Errorf("-activation: %w", err)
		}
		cfg.Activation = fn
	}
	if *bound >= 0 {
		cfg.Range = *bound
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	net, err := cfg.Build()
	if err != nil {
		return err
	}

	values, err := parseFloats(*input)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}
	x, err := matrix.Column(values...)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}

	out, err := net.Feedforward(x)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "network:    %s\nparameters: %d\ninput:      %s\noutput:     %s\n",
		net, nn.CountParameters(net.Parameters()), x.Transposed(), out.Transposed())
	return err
}

func parseInts(s string) ([]int, error) {
	fields := splitList(s)
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := splitList(s)
	floats := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		floats[i] = v
	}
	return floats, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
