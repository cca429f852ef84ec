// Package render draws plot primitives onto an RGB565 framebuffer.
package render

import (
	"image/color"

	"plotter/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Surface is what the plotter draws on. Coordinates are screen pixels; anything
// outside the surface is clipped.
type Surface interface {
	Width() int
	Height() int
	Clear(c color.RGBA)
	Pixel(x, y int, c color.RGBA)
	Line(x0, y0, x1, y1 int, c color.RGBA)
	Circle(cx, cy, r int, c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y int, s string, c color.RGBA)
	TextWidth(s string) int
	LineHeight() int
	Present() error
}

var (
	_ Surface           = (*Canvas)(nil)
	_ drivers.Displayer = (*Canvas)(nil)
)

// Canvas implements Surface over a hal.Framebuffer.
type Canvas struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter

	ascent     int
	lineHeight int
}

// NewCanvas returns a canvas drawing into fb with the default bitmap font.
func NewCanvas(fb hal.Framebuffer) *Canvas {
	return NewCanvasWithFont(fb, &proggy.TinySZ8pt7b)
}

func NewCanvasWithFont(fb hal.Framebuffer, font tinyfont.Fonter) *Canvas {
	c := &Canvas{fb: fb, font: font}
	c.lineHeight = int(font.GetYAdvance())
	c.ascent = -int(font.GetGlyph('0').Info().YOffset)
	if c.ascent <= 0 || c.ascent > c.lineHeight {
		c.ascent = c.lineHeight - 1
	}
	return c
}

func (c *Canvas) Width() int {
	if c.fb == nil {
		return 0
	}
	return c.fb.Width()
}

func (c *Canvas) Height() int {
	if c.fb == nil {
		return 0
	}
	return c.fb.Height()
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.Width()), int16(c.Height())
}

// SetPixel implements drivers.Displayer.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Pixel(int(x), int(y), col)
}

// Display implements drivers.Displayer.
func (c *Canvas) Display() error { return c.Present() }

func (c *Canvas) Present() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) Pixel(x, y int, col color.RGBA) {
	buf, ok := c.buffer()
	if !ok {
		return
	}
	if x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return
	}
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := rgb565From888(col.R, col.G, col.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// RGBAt reads back the pixel at (x, y).
func (c *Canvas) RGBAt(x, y int) (r, g, b uint8, ok bool) {
	buf, ok := c.buffer()
	if !ok || x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return 0, 0, 0, false
	}
	off := y*c.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return 0, 0, 0, false
	}
	r, g, b = rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return r, g, b, true
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	buf, ok := c.buffer()
	if !ok {
		return
	}
	x0 := clampInt(x, 0, c.fb.Width())
	y0 := clampInt(y, 0, c.fb.Height())
	x1 := clampInt(x+w, 0, c.fb.Width())
	y1 := clampInt(y+h, 0, c.fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p := rgb565From888(col.R, col.G, col.B)
	lo := byte(p)
	hi := byte(p >> 8)
	stride := c.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(c, c.font, int16(x), int16(y+c.ascent), s, col)
}

func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

func (c *Canvas) LineHeight() int { return c.lineHeight }

func (c *Canvas) buffer() ([]byte, bool) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return nil, false
	}
	buf := c.fb.Buffer()
	return buf, buf != nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8((uint32(p>>11&0x1F) * 255) / 31)
	g = uint8((uint32(p>>5&0x3F) * 255) / 63)
	b = uint8((uint32(p&0x1F) * 255) / 31)
	return r, g, b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
