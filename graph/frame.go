// Package graph maps a plotted function between its domain and screen space:
// sampling a curve into screen points, deriving axis labels from the inverse
// mapping, and laying out the crosshair guides.
package graph

import "math"

// Frame is the visible plotting area in pixels.
type Frame struct {
	Width  int
	Height int
}

// CenterX is the screen column of pixel offset 0.
func (f Frame) CenterX() int { return f.Width / 2 }

// Contains reports whether (x, y) lies on screen.
func (f Frame) Contains(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Domain maps a pixel offset from the centre to the function's domain.
func Domain(v View, x int) float64 {
	return float64(x+v.Phase) / v.Amplitude
}

// ScreenX maps a pixel offset from the centre to a screen column.
func (f Frame) ScreenX(x int) int { return f.CenterX() + x }

// ScreenY maps a function value to a screen row.
func ScreenY(v View, value float64) int {
	return v.Origin - roundInt(value*v.Amplitude)
}

// DomainAt is the inverse of ScreenX followed by Domain.
func (f Frame) DomainAt(v View, screenX float64) float64 {
	return (screenX - float64(f.CenterX()) + float64(v.Phase)) / v.Amplitude
}

// ValueAt is the inverse of ScreenY, without the rounding.
func ValueAt(v View, screenY float64) float64 {
	return (float64(v.Origin) - screenY) / v.Amplitude
}

// AxisX is the screen column where the domain value is 0.
func (f Frame) AxisX(v View) int { return f.CenterX() - v.Phase }

func roundInt(v float64) int {
	r := math.Round(v)
	if r > math.MaxInt32 {
		return math.MaxInt32
	}
	if r < math.MinInt32 {
		return math.MinInt32
	}
	return int(r)
}
