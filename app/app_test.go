package app

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"plotter/graph"
	"plotter/graph/calc"
	"plotter/hal"
	"plotter/tasks/plotter"
)

func TestNewWithConfigSteps(t *testing.T) {
	var log bytes.Buffer
	h := hal.New(hal.Config{Width: 64, Height: 64, Log: &log})

	step := NewWithConfig(h, Config{Plot: plotter.Config{Builtin: calc.Sin, UseBuiltin: true}})
	for i := 0; i < 3; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !strings.Contains(log.String(), "plotter dev: f(x)=sin(x)") {
		t.Fatalf("missing startup line in log:\n%s", log.String())
	}
}

func TestWriteSamples(t *testing.T) {
	fr := graph.Frame{Width: 600, Height: 600}
	var out bytes.Buffer
	cfg := plotter.Config{
		View:       graph.View{Amplitude: 2, Origin: 300},
		Expression: "X",
	}
	if err := WriteSamples(&out, fr, cfg); err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}

	sc := bufio.NewScanner(&out)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 601 {
		t.Fatalf("got %d lines, want header + 600", len(lines))
	}
	if lines[0] != "# f(x)=X phase=0 amp=2 origin=300" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[301] != "300 300" {
		t.Fatalf("center line = %q", lines[301])
	}
}

func TestWriteSamplesReportsFailures(t *testing.T) {
	fr := graph.Frame{Width: 40, Height: 40}
	var out bytes.Buffer
	err := WriteSamples(&out, fr, plotter.Config{Builtin: calc.Cot, UseBuiltin: true})
	if err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}
	if !strings.Contains(out.String(), "1/40 samples failed") {
		t.Fatalf("missing failure footer:\n%s", out.String())
	}
}

func TestWriteSamplesErrors(t *testing.T) {
	fr := graph.Frame{Width: 40, Height: 40}
	var out bytes.Buffer

	if err := WriteSamples(&out, fr, plotter.Config{}); !errors.Is(err, calc.ErrEmpty) {
		t.Fatalf("no function: err = %v", err)
	}
	if err := WriteSamples(&out, fr, plotter.Config{Expression: "sin("}); !errors.Is(err, calc.ErrSyntax) {
		t.Fatalf("bad expression: err = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output on error: %q", out.String())
	}
}
