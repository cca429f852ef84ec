package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty  = errors.New("empty expression")
	ErrSyntax = errors.New("syntax error")
	ErrEval   = errors.New("eval error")
	// ErrDomain is returned when the result is NaN or infinite.
	ErrDomain = errors.New("domain error")
)

// Evaluator compiles an expression over named variables and evaluates it.
type Evaluator interface {
	SetExpression(text string) error
	BindVariable(name string, v float64)
	Evaluate() (float64, error)
}

// Func is a plottable function of a single variable.
type Func func(t float64) (float64, error)

// EvaluatorFunc adapts ev to a Func that binds t to the variable name.
func EvaluatorFunc(ev Evaluator, name string) Func {
	return func(t float64) (float64, error) {
		ev.BindVariable(name, t)
		return ev.Evaluate()
	}
}

func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: result is NaN", ErrDomain)
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result is infinite", ErrDomain)
	}
	return v, nil
}
