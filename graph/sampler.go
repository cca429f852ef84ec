package graph

import (
	"fmt"
	"math"

	"plotter/graph/calc"
)

// Point is a screen-space sample.
type Point struct {
	X int
	Y int
}

// Buffer is one sampling pass, ordered left to right.
type Buffer struct {
	Points []Point

	// Samples is the number of evaluated columns, Failed how many of them fell
	// back to 0, and Err the first failure.
	Samples int
	Failed  int
	Err     error
}

// Sample evaluates f once per pixel column of fr under v.
//
// A failed evaluation plots as 0 and the pass continues. The returned buffer
// is freshly allocated and never aliases a previous one.
func Sample(fr Frame, v View, f calc.Func) Buffer {
	half := fr.Width / 2
	buf := Buffer{Points: make([]Point, 0, fr.Width)}
	for x := -half; x < fr.Width-half; x++ {
		sx := fr.ScreenX(x)
		if sx < 0 || sx >= fr.Width {
			continue
		}

		buf.Samples++
		val, err := evalPoint(f, Domain(v, x))
		if err != nil {
			buf.Failed++
			if buf.Err == nil {
				buf.Err = fmt.Errorf("x=%d: %w", sx, err)
			}
			val = 0
		}
		buf.Points = append(buf.Points, Point{X: sx, Y: ScreenY(v, val)})
	}
	return buf
}

func evalPoint(f calc.Func, t float64) (float64, error) {
	if f == nil {
		return 0, calc.ErrEmpty
	}
	val, err := f(t)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("%w: %v", calc.ErrDomain, val)
	}
	return val, nil
}
