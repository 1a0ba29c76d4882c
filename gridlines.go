package glyphr

import "github.com/tinne26/glyphr/canvas"

// Draws the separators between columns and between the given number
// of populated rows. The first horizontal separator is placed at the
// gridline offset below the top margin.
func (self *Renderer) drawGridlines(target *canvas.Canvas, topMargin int, lines int) {
	width, height := target.Width(), target.Height()
	for i := 1; i < self.grid.ItemsPerLine; i++ {
		x := i*self.grid.HorzAdvance
		target.DrawLine(x, 0, x, height - 1, self.gridColor)
	}

	y := topMargin + self.GetGridlineOffset()
	for i := 0; i < lines - 1; i++ {
		target.DrawLine(0, y, width - 1, y, self.gridColor)
		y += self.grid.VertAdvance
	}
}
