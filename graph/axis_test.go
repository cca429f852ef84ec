package graph

import (
	"math"
	"testing"
)

func TestLabels(t *testing.T) {
	fr := Frame{Width: 600, Height: 600}
	v := View{Phase: 0, Amplitude: 2, Origin: 300}

	axes := Labels(fr, v, 10)
	if len(axes.X) != 11 {
		t.Fatalf("x labels = %d, want 11", len(axes.X))
	}
	if len(axes.Y) != 10 {
		t.Fatalf("y labels = %d, want 10 (middle skipped)", len(axes.Y))
	}

	if l := axes.X[0]; l.Pos != 0 || l.Text != "-150.0" {
		t.Fatalf("first x label = %+v", l)
	}
	if l := axes.X[5]; l.Pos != 300 || l.Text != "0.0" {
		t.Fatalf("middle x label = %+v", l)
	}
	if l := axes.Y[0]; l.Pos != 0 || l.Text != "150.0" {
		t.Fatalf("first y label = %+v", l)
	}
	for _, l := range axes.Y {
		if l.Pos == 300 {
			t.Fatal("middle y label should be skipped")
		}
	}
}

func TestLabelsAgreeWithSampler(t *testing.T) {
	fr := Frame{Width: 640, Height: 480}
	v := View{Phase: -45, Amplitude: 3.5, Origin: 200}

	axes := Labels(fr, v, 8)
	for _, l := range axes.X {
		want := Domain(v, l.Pos-fr.CenterX())
		if math.Abs(l.Value-want) > 1e-9 {
			t.Fatalf("x label at %d = %v, sampler domain %v", l.Pos, l.Value, want)
		}
	}
	for _, l := range axes.Y {
		// A curve point with this value lands on the label's row.
		if y := ScreenY(v, l.Value); y != l.Pos {
			t.Fatalf("y label %v at %d, sampler row %d", l.Value, l.Pos, y)
		}
	}
}

func TestLabelsDefaultTicksAndNegativeZero(t *testing.T) {
	fr := Frame{Width: 100, Height: 100}
	v := View{Phase: 0, Amplitude: 1, Origin: 50}
	axes := Labels(fr, v, 0)
	if len(axes.X) != DefaultTicks+1 {
		t.Fatalf("x labels = %d", len(axes.X))
	}
	if got := formatLabel(-0.04); got != "0.0" {
		t.Fatalf("formatLabel(-0.04) = %q", got)
	}
}
