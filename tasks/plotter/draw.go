package plotter

import (
	"fmt"

	"plotter/graph"
	"plotter/render"
)

const (
	labelGap   = 5
	markRadius = 2
	caretBlink = 500
	hudMargin  = 4
)

func (t *Task) drawPlot() {
	s := t.surf
	v := t.ctl.View
	ax := t.fr.AxisX(v)

	s.Clear(render.ColorBG)
	s.Line(0, v.Origin, t.fr.Width-1, v.Origin, render.ColorAxis)
	s.Line(ax, 0, ax, t.fr.Height-1, render.ColorAxis)

	for _, l := range t.axes.X {
		s.Text(l.Pos, v.Origin+labelGap, l.Text, render.ColorLabel)
	}
	for _, l := range t.axes.Y {
		s.Text(ax+labelGap, l.Pos-labelGap, l.Text, render.ColorLabel)
	}

	pts := t.buf.Points
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, render.ColorCurve)
	}

	t.drawHUD()
	t.drawCrosshair()
}

func (t *Task) drawCrosshair() {
	if !t.mark.Set {
		return
	}
	t.surf.Circle(t.mark.X, t.mark.Y, markRadius, render.ColorMark)
	for _, p := range graph.Guides(t.fr, t.ctl.View, t.mark, graph.GuideStride) {
		t.surf.Pixel(p.X, p.Y, render.ColorMark)
	}
}

func (t *Task) drawHUD() {
	s := t.surf
	lh := s.LineHeight()
	y := hudMargin

	line := t.Describe()
	if t.mark.Set {
		mx, my := graph.Readout(t.fr, t.ctl.View, t.mark)
		line += fmt.Sprintf(" mark=(%.2f, %.2f)", mx, my)
	}
	s.Text(hudMargin, y, line, render.ColorHUD)
	y += lh

	if t.buf.Err != nil {
		s.Text(hudMargin, y, fmt.Sprintf("%d/%d failed: %v", t.buf.Failed, t.buf.Samples, t.buf.Err), render.ColorError)
	}

	help := "arrows pan/shift  z/x zoom  space mark  c clear  r expr  tab builtin  esc quit"
	s.Text(hudMargin, t.fr.Height-lh-hudMargin, help, render.ColorHUD)
}

func (t *Task) drawEntry() {
	s := t.surf
	s.Clear(render.ColorBG)
	s.Text(20, 20, "Math here:", render.ColorPrompt)

	text := string(t.entry)
	s.Text(20, 40, text, render.ColorInput)
	if (t.now/caretBlink)%2 == 0 {
		s.FillRect(20+s.TextWidth(text)+1, 40, 2, s.LineHeight(), render.ColorCaret)
	}

	s.Text(20, 40+2*s.LineHeight(), "enter: plot  esc: cancel  functions: sin cos tan cot log log10 exp sqrt abs pow mod  constants: pi e", render.ColorPrompt)
}
