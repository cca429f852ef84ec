package render

import (
	"image/color"
	"math"
	"testing"
	"time"

	"plotter/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := rgb565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func lit(c *Canvas) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			r, g, b, _ := c.RGBAt(x, y)
			if r != 0 || g != 0 || b != 0 {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func TestPixelClipsAndReadsBack(t *testing.T) {
	c := NewCanvas(newTestFB(8, 4))
	c.Pixel(-1, 0, white)
	c.Pixel(8, 0, white)
	c.Pixel(0, 4, white)
	if n := len(lit(c)); n != 0 {
		t.Fatalf("out-of-range pixels drew %d points", n)
	}

	c.Pixel(3, 2, color.RGBA{R: 0xff, A: 0xff})
	r, g, b, ok := c.RGBAt(3, 2)
	if !ok || r != 0xff || g != 0 || b != 0 {
		t.Fatalf("RGBAt = %d,%d,%d ok=%v", r, g, b, ok)
	}
	if _, _, _, ok := c.RGBAt(9, 9); ok {
		t.Fatal("RGBAt out of range should fail")
	}
}

func TestLine(t *testing.T) {
	c := NewCanvas(newTestFB(16, 16))
	c.Line(1, 1, 10, 4, white)
	pts := lit(c)
	if !pts[[2]int{1, 1}] || !pts[[2]int{10, 4}] {
		t.Fatal("line endpoints not drawn")
	}
	// x-major line: one pixel per column.
	if len(pts) != 10 {
		t.Fatalf("line drew %d pixels, want 10", len(pts))
	}

	c.Clear(color.RGBA{})
	c.Line(5, 9, 5, 2, white)
	if n := len(lit(c)); n != 8 {
		t.Fatalf("vertical line drew %d pixels, want 8", n)
	}
}

func TestLineClipsFarEndpoints(t *testing.T) {
	c := NewCanvas(newTestFB(10, 10))

	start := time.Now()
	c.Line(0, 0, 1, math.MaxInt32, white)
	c.Line(1, math.MinInt32, 2, math.MaxInt32, white)
	if d := time.Since(start); d > 100*time.Millisecond {
		t.Fatalf("steep lines took %v", d)
	}

	pts := lit(c)
	for y := 0; y < 10; y++ {
		if !pts[[2]int{0, y}] {
			t.Fatalf("pixel (0,%d) not drawn", y)
		}
		if !pts[[2]int{1, y}] && !pts[[2]int{2, y}] {
			t.Fatalf("row %d of the crossing line not drawn", y)
		}
	}
}

func TestLineClipsBothEnds(t *testing.T) {
	c := NewCanvas(newTestFB(10, 10))
	c.Line(-5, 5, 15, 5, white)
	pts := lit(c)
	if len(pts) != 10 {
		t.Fatalf("line drew %d pixels, want 10", len(pts))
	}
	for x := 0; x < 10; x++ {
		if !pts[[2]int{x, 5}] {
			t.Fatalf("pixel (%d,5) not drawn", x)
		}
	}

	c.Clear(color.RGBA{})
	c.Line(-5, -5, -1, 20, white)
	c.Line(20, 0, 30, 9, white)
	if n := len(lit(c)); n != 0 {
		t.Fatalf("off-screen lines drew %d pixels", n)
	}
}

func TestCircle(t *testing.T) {
	c := NewCanvas(newTestFB(16, 16))
	c.Circle(8, 8, 2, white)
	if n := len(lit(c)); n != 13 {
		t.Fatalf("radius-2 disc drew %d pixels, want 13", n)
	}

	c.Clear(color.RGBA{})
	c.Circle(0, 0, 2, white)
	if n := len(lit(c)); n != 6 {
		t.Fatalf("clipped disc drew %d pixels, want 6", n)
	}
}

func TestFillRectClamps(t *testing.T) {
	c := NewCanvas(newTestFB(10, 10))
	c.FillRect(-5, 8, 8, 10, white)
	if n := len(lit(c)); n != 3*2 {
		t.Fatalf("FillRect drew %d pixels, want 6", n)
	}
}

func TestTextDrawsInsideLine(t *testing.T) {
	c := NewCanvas(newTestFB(64, 32))
	if c.LineHeight() <= 0 {
		t.Fatalf("LineHeight = %d", c.LineHeight())
	}
	c.Text(2, 4, "1.0", white)
	pts := lit(c)
	if len(pts) == 0 {
		t.Fatal("text drew nothing")
	}
	w := c.TextWidth("1.0")
	for p := range pts {
		if p[0] < 2 || p[0] >= 2+w || p[1] < 4 || p[1] >= 4+c.LineHeight() {
			t.Fatalf("text pixel %v outside box x=[2,%d) y=[4,%d)", p, 2+w, 4+c.LineHeight())
		}
	}
}

func TestPresentAndSize(t *testing.T) {
	fb := newTestFB(7, 5)
	c := NewCanvas(fb)
	if err := c.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d", fb.presents)
	}
	if x, y := c.Size(); x != 7 || y != 5 {
		t.Fatalf("Size = %d,%d", x, y)
	}
}
