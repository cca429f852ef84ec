// Package plotter is the interactive graph task: it turns key and pointer
// input into view changes, re-samples the curve when the view or function
// changes, and draws the cached curve, axes and crosshair every frame.
package plotter

import (
	"errors"
	"fmt"

	"plotter/graph"
	"plotter/graph/calc"
	"plotter/hal"
	"plotter/render"
)

// ErrQuit is returned by Step when the user asks to exit.
var ErrQuit = errors.New("plotter: quit")

// Source selects where the plotted function comes from.
type Source uint8

const (
	SourceExpression Source = iota
	SourceBuiltin
)

func (s Source) String() string {
	if s == SourceBuiltin {
		return "builtin"
	}
	return "expression"
}

// Config is the initial task state. Zero View, Steps and Ticks take defaults.
type Config struct {
	View  graph.View
	Steps graph.Steps
	Ticks int

	// Expression starts the task plotting it; with UseBuiltin the task starts
	// on Builtin instead. With neither the task opens the expression prompt.
	Expression string
	Builtin    calc.Builtin
	UseBuiltin bool
}

type mode uint8

const (
	modePlot mode = iota
	modeEntry
)

// Task implements the plot view and the expression prompt.
type Task struct {
	log   hal.Logger
	surf  render.Surface
	keys  <-chan hal.KeyEvent
	ptr   hal.Pointer
	clock <-chan uint64

	fr    graph.Frame
	ctl   *graph.Controller
	ticks int

	eval    calc.Evaluator
	fn      calc.Func
	source  Source
	builtin calc.Builtin

	buf    graph.Buffer
	axes   graph.Axes
	mark   graph.Mark
	passes int

	lastFailure string

	mode  mode
	held  map[hal.KeyCode]bool
	entry []rune
	now   uint64
}

// New builds a task drawing on h's framebuffer.
func New(h hal.HAL, cfg Config) *Task {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	return newTask(h, render.NewCanvas(fb), calc.New(), cfg)
}

func newTask(h hal.HAL, surf render.Surface, eval calc.Evaluator, cfg Config) *Task {
	t := &Task{
		log:  h.Logger(),
		surf: surf,
		eval: eval,
		held: make(map[hal.KeyCode]bool),
		fr:   graph.Frame{Width: surf.Width(), Height: surf.Height()},
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			t.keys = kbd.Events()
		}
		t.ptr = in.Pointer()
	}
	if tm := h.Time(); tm != nil {
		t.clock = tm.Ticks()
	}

	view := cfg.View
	if view == (graph.View{}) {
		view = graph.DefaultView(t.fr)
	}
	steps := cfg.Steps
	if steps == (graph.Steps{}) {
		steps = graph.DefaultSteps
	}
	t.ctl = graph.NewController(view, steps)
	t.ticks = cfg.Ticks
	if t.ticks <= 0 {
		t.ticks = graph.DefaultTicks
	}

	switch {
	case cfg.Expression != "":
		t.setExpression(cfg.Expression)
	case cfg.UseBuiltin:
		t.setBuiltin(cfg.Builtin)
	default:
		t.fn = calc.EvaluatorFunc(t.eval, calc.Variable)
		t.openEntry()
	}
	return t
}

// Step runs one frame: input, conditional re-sample, draw.
func (t *Task) Step() error {
	t.drainClock()
	if err := t.drainKeys(); err != nil {
		return err
	}
	if t.mode == modePlot {
		t.applyHeld()
		if t.ctl.Take() {
			t.resample()
		}
		t.drawPlot()
	} else {
		t.drawEntry()
	}
	return t.surf.Present()
}

// Describe summarises the current function and view for logs.
func (t *Task) Describe() string {
	v := t.ctl.View
	return fmt.Sprintf("f(x)=%s phase=%d amp=%.1f origin=%d", t.formula(), v.Phase, v.Amplitude, v.Origin)
}

func (t *Task) formula() string {
	if t.source == SourceBuiltin {
		return t.builtin.Formula()
	}
	if e, ok := t.eval.(interface{ Expression() string }); ok {
		return e.Expression()
	}
	return "?"
}

func (t *Task) setExpression(text string) {
	if err := t.eval.SetExpression(text); err != nil {
		t.logf("graph: expression %q: %v", text, err)
	} else {
		t.logf("graph: expression set: %s", text)
	}
	t.source = SourceExpression
	t.fn = calc.EvaluatorFunc(t.eval, calc.Variable)
	t.ctl.Invalidate()
}

func (t *Task) setBuiltin(b calc.Builtin) {
	if !b.Valid() {
		b = calc.Zero
	}
	t.source = SourceBuiltin
	t.builtin = b
	t.fn = b.Func()
	t.logf("graph: builtin %s: %s", b, b.Formula())
	t.ctl.Invalidate()
}

func (t *Task) cycleBuiltin() {
	if t.source == SourceBuiltin {
		t.setBuiltin(t.builtin.Next())
		return
	}
	t.setBuiltin(t.builtin)
}

// resample replaces the cached buffer and labels wholesale.
func (t *Task) resample() {
	t.buf = graph.Sample(t.fr, t.ctl.View, t.fn)
	t.axes = graph.Labels(t.fr, t.ctl.View, t.ticks)
	t.passes++

	if t.buf.Failed == 0 {
		t.lastFailure = ""
		return
	}
	msg := fmt.Sprintf("graph: %d/%d samples failed: %v", t.buf.Failed, t.buf.Samples, t.buf.Err)
	if msg != t.lastFailure {
		t.logf("%s", msg)
		t.lastFailure = msg
	}
}

func (t *Task) drainClock() {
	if t.clock == nil {
		return
	}
	for {
		select {
		case seq := <-t.clock:
			t.now = seq
		default:
			return
		}
	}
}

func (t *Task) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString(fmt.Sprintf(format, args...))
}
