package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Builtin selects one of the fixed plottable functions by index.
type Builtin int

const (
	Zero Builtin = iota
	Sin
	Cos
	Tan
	Cot
	Pow2
	Square
	Linear

	numBuiltins
)

var builtinNames = [numBuiltins]string{
	Zero:   "zero",
	Sin:    "sin",
	Cos:    "cos",
	Tan:    "tan",
	Cot:    "cot",
	Pow2:   "pow2",
	Square: "square",
	Linear: "linear",
}

var builtinFormulas = [numBuiltins]string{
	Zero:   "0",
	Sin:    "sin(x)",
	Cos:    "cos(x)",
	Tan:    "tan(x)",
	Cot:    "cot(x)",
	Pow2:   "2^x",
	Square: "x^2",
	Linear: "x",
}

// Builtins lists every built-in function in index order.
func Builtins() []Builtin {
	out := make([]Builtin, numBuiltins)
	for i := range out {
		out[i] = Builtin(i)
	}
	return out
}

func (b Builtin) Valid() bool { return b >= 0 && b < numBuiltins }

func (b Builtin) String() string {
	if !b.Valid() {
		return "builtin(" + strconv.Itoa(int(b)) + ")"
	}
	return builtinNames[b]
}

// Formula returns the function in expression notation.
func (b Builtin) Formula() string {
	if !b.Valid() {
		return "?"
	}
	return builtinFormulas[b]
}

// Next returns the following built-in, wrapping after the last one.
func (b Builtin) Next() Builtin {
	if !b.Valid() {
		return Zero
	}
	return (b + 1) % numBuiltins
}

func (b Builtin) Eval(t float64) (float64, error) {
	var v float64
	switch b {
	case Zero:
		v = 0
	case Sin:
		v = math.Sin(t)
	case Cos:
		v = math.Cos(t)
	case Tan:
		v = math.Tan(t)
	case Cot:
		v = 1 / math.Tan(t)
	case Pow2:
		v = math.Pow(2, t)
	case Square:
		v = t * t
	case Linear:
		v = t
	default:
		return 0, fmt.Errorf("%w: unknown builtin %d", ErrEval, int(b))
	}
	return checkFinite(v)
}

func (b Builtin) Func() Func { return b.Eval }

// ParseBuiltin resolves a built-in by name or index.
func ParseBuiltin(s string) (Builtin, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		b := Builtin(n)
		if !b.Valid() {
			return 0, fmt.Errorf("builtin index %d out of range 0..%d", n, numBuiltins-1)
		}
		return b, nil
	}
	for i, name := range builtinNames {
		if name == s {
			return Builtin(i), nil
		}
	}
	return 0, fmt.Errorf("unknown builtin %q", s)
}
