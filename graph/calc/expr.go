package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Variable is the free variable pre-declared by New.
const Variable = "x"

// scalarFunc describes a numeric function callable from expressions.
type scalarFunc struct {
	args int
	fn   func([]float64) float64
}

var scalarFuncs = map[string]scalarFunc{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"cot":   unary(func(v float64) float64 { return 1 / math.Tan(v) }),
	"log":   unary(math.Log),
	"ln":    unary(math.Log),
	"log10": unary(math.Log10),
	"exp":   unary(math.Exp),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"pow": {args: 2, fn: func(a []float64) float64 {
		return math.Pow(a[0], a[1])
	}},
	// The % operator is integer-only; mod works on floats.
	"mod":  {args: 2, fn: func(a []float64) float64 { return math.Mod(a[0], a[1]) }},
	"fmod": {args: 2, fn: func(a []float64) float64 { return math.Mod(a[0], a[1]) }},
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func unary(f func(float64) float64) scalarFunc {
	return scalarFunc{args: 1, fn: func(a []float64) float64 { return f(a[0]) }}
}

func (f scalarFunc) call(name string) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != f.args {
			return nil, fmt.Errorf("%s: want %d argument(s), got %d", name, f.args, len(params))
		}
		args := make([]float64, len(params))
		for i, p := range params {
			v, err := toFloat(p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			args[i] = v
		}
		return f.fn(args), nil
	}
}

// Engine is an Evaluator backed by the expr-lang engine.
//
// Names are case-insensitive: the expression text is lowered before it is
// compiled, so SIN(X) and sin(x) are the same program. Variables bound with a
// new name become visible to the next SetExpression.
type Engine struct {
	text string
	vars map[string]any
	prog *vm.Program
	err  error
}

// New returns an Engine with x, pi and e declared and no expression.
func New() *Engine {
	e := &Engine{
		vars: make(map[string]any, len(constants)+1),
		err:  ErrEmpty,
	}
	for name, v := range constants {
		e.vars[name] = v
	}
	e.vars[Variable] = 0.0
	return e
}

// Expression returns the text last passed to SetExpression.
func (e *Engine) Expression() string { return e.text }

func (e *Engine) SetExpression(text string) error {
	e.text = text
	e.prog = nil

	src := strings.ToLower(strings.TrimSpace(text))
	if src == "" {
		e.err = ErrEmpty
		return e.err
	}
	prog, err := expr.Compile(src, e.options()...)
	if err != nil {
		e.err = fmt.Errorf("%w: %v", ErrSyntax, err)
		return e.err
	}
	e.prog = prog
	e.err = nil
	return nil
}

func (e *Engine) BindVariable(name string, v float64) {
	e.vars[strings.ToLower(name)] = v
}

// Evaluate runs the compiled expression against the current bindings.
// Without a compiled expression it returns the last SetExpression error.
func (e *Engine) Evaluate() (float64, error) {
	if e.prog == nil {
		return 0, e.err
	}
	out, err := expr.Run(e.prog, e.vars)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEval, err)
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, err
	}
	return checkFinite(v)
}

func (e *Engine) options() []expr.Option {
	opts := make([]expr.Option, 0, len(scalarFuncs)+1)
	opts = append(opts, expr.Env(e.vars))
	for name, f := range scalarFuncs {
		opts = append(opts, expr.Function(name, f.call(name)))
	}
	return opts
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: non-numeric result %T", ErrEval, v)
	}
}
