package graph

// GuideStride is the pixel step of the dashed crosshair guides.
const GuideStride = 2

// Mark is the crosshair position. The zero value means no mark.
type Mark struct {
	X   int
	Y   int
	Set bool
}

// MarkAt returns a set mark at (x, y).
func MarkAt(x, y int) Mark { return Mark{X: x, Y: y, Set: true} }

// Guides returns the dashed guide pixels for m: a horizontal run on row m.Y
// from the vertical axis toward m.X, and a vertical run on column m.X from
// m.Y toward the horizontal axis. Both runs exclude their end point.
func Guides(fr Frame, v View, m Mark, stride int) []Point {
	if !m.Set {
		return nil
	}
	if stride <= 0 {
		stride = GuideStride
	}

	var out []Point
	ax := fr.AxisX(v)
	if m.X >= ax {
		for x := ax; x < m.X; x += stride {
			out = append(out, Point{X: x, Y: m.Y})
		}
	} else {
		for x := ax; x > m.X; x -= stride {
			out = append(out, Point{X: x, Y: m.Y})
		}
	}

	if m.Y < v.Origin {
		for y := m.Y; y < v.Origin; y += stride {
			out = append(out, Point{X: m.X, Y: y})
		}
	} else {
		for y := m.Y; y > v.Origin; y -= stride {
			out = append(out, Point{X: m.X, Y: y})
		}
	}
	return out
}

// Readout returns the domain and value coordinates under m.
func Readout(fr Frame, v View, m Mark) (x, y float64) {
	return fr.DomainAt(v, float64(m.X)), ValueAt(v, float64(m.Y))
}
