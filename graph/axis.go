package graph

import "strconv"

// DefaultTicks is the number of label intervals per axis.
const DefaultTicks = 10

// Label is one axis tick: its pixel position along the axis and the value
// the inverse mapping assigns to it.
type Label struct {
	Pos   int
	Value float64
	Text  string
}

// Axes holds the labels for the horizontal (X) and vertical (Y) axis.
type Axes struct {
	X []Label
	Y []Label
}

// Labels derives ticks+1 labels per axis from the inverse of the sampler's
// mapping. The vertical label at the middle tick is skipped so it does not
// overlap the horizontal axis labels.
func Labels(fr Frame, v View, ticks int) Axes {
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	xSpacing := float64(fr.Width) / float64(ticks)
	ySpacing := float64(fr.Height) / float64(ticks)

	axes := Axes{
		X: make([]Label, 0, ticks+1),
		Y: make([]Label, 0, ticks),
	}
	for i := 0; i <= ticks; i++ {
		xp := float64(i) * xSpacing
		xv := fr.DomainAt(v, xp)
		axes.X = append(axes.X, Label{Pos: int(xp), Value: xv, Text: formatLabel(xv)})

		if i == ticks/2 {
			continue
		}
		yp := float64(i) * ySpacing
		yv := ValueAt(v, yp)
		axes.Y = append(axes.Y, Label{Pos: int(yp), Value: yv, Text: formatLabel(yv)})
	}
	return axes
}

func formatLabel(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}
