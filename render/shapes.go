package render

import (
	"image/color"
	"math"
)

// Line draws a one-pixel line with Bresenham's algorithm, both ends inclusive.
// The segment is clipped to the surface first, so only visible pixels are
// stepped however far off-screen the endpoints lie.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, c.Width()-1, c.Height()-1)
	if !ok {
		return
	}
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Pixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle fills a disc of radius r centred on (cx, cy).
func (c *Canvas) Circle(cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		c.Pixel(cx, cy, col)
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				c.Pixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// clipLine trims a segment to [0, maxX] x [0, maxY] (Liang-Barsky).
// Segments already inside are returned unchanged.
func clipLine(x0, y0, x1, y1, maxX, maxY int) (int, int, int, int, bool) {
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	in := func(x, y int) bool { return x >= 0 && x <= maxX && y >= 0 && y <= maxY }
	if in(x0, y0) && in(x1, y1) {
		return x0, y0, x1, y1, true
	}

	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx, float64(y1)-fy
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx},
		{dx, float64(maxX) - fx},
		{-dy, fy},
		{dy, float64(maxY) - fy},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	px := func(t float64) int { return clampInt(int(math.Round(fx+t*dx)), 0, maxX) }
	py := func(t float64) int { return clampInt(int(math.Round(fy+t*dy)), 0, maxY) }
	return px(t0), py(t0), px(t1), py(t1), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
