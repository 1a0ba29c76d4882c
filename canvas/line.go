package canvas

import "image/color"

// Draws a one pixel wide line between the given points (both included)
// using Bresenham's algorithm. Points outside the canvas are skipped.
func (self *Canvas) DrawLine(x1, y1, x2, y2 int, clr color.Color) {
	rgba := color.RGBAModel.Convert(clr).(color.RGBA)

	dx, stepX := absDiff(x2, x1), 1
	if x2 < x1 { stepX = -1 }
	dy, stepY := -absDiff(y2, y1), 1
	if y2 < y1 { stepY = -1 }

	err := dx + dy
	x, y := x1, y1
	for {
		self.rgba.SetRGBA(x, y, rgba) // ignores out of bounds coords
		if x == x2 && y == y2 { return }
		doubleErr := 2*err
		if doubleErr >= dy {
			err += dy
			x += stepX
		}
		if doubleErr <= dx {
			err += dx
			y += stepY
		}
	}
}

func absDiff(a, b int) int {
	if a >= b { return a - b }
	return b - a
}
