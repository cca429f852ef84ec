// Package app wires the plotter task to a HAL and provides the batch
// sampling entry point used by the CLI.
package app

import (
	"bufio"
	"fmt"
	"io"

	"plotter/graph"
	"plotter/graph/calc"
	"plotter/hal"
	"plotter/internal/buildinfo"
	"plotter/tasks/plotter"
)

// Config selects the initial task state.
type Config struct {
	Plot plotter.Config
}

// New starts the plotter with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig starts the plotter and returns its step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	t := plotter.New(h, cfg.Plot)
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("plotter %s: %s", buildinfo.Short(), t.Describe()))
	}
	return t.Step
}

// WriteSamples samples the configured function over fr and writes one
// "x y" screen coordinate pair per line. Sampling failures are reported in a
// trailing comment line; an expression that does not compile is an error.
func WriteSamples(w io.Writer, fr graph.Frame, cfg plotter.Config) error {
	v := cfg.View
	if v == (graph.View{}) {
		v = graph.DefaultView(fr)
	}

	var (
		fn      calc.Func
		formula string
	)
	switch {
	case cfg.Expression != "":
		eng := calc.New()
		if err := eng.SetExpression(cfg.Expression); err != nil {
			return fmt.Errorf("expression %q: %w", cfg.Expression, err)
		}
		fn = calc.EvaluatorFunc(eng, calc.Variable)
		formula = eng.Expression()
	case cfg.UseBuiltin:
		fn = cfg.Builtin.Func()
		formula = cfg.Builtin.Formula()
	default:
		return calc.ErrEmpty
	}

	buf := graph.Sample(fr, v, fn)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# f(x)=%s phase=%d amp=%g origin=%d\n", formula, v.Phase, v.Amplitude, v.Origin)
	for _, p := range buf.Points {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}
	if buf.Failed > 0 {
		fmt.Fprintf(bw, "# %d/%d samples failed: %v\n", buf.Failed, buf.Samples, buf.Err)
	}
	return bw.Flush()
}
