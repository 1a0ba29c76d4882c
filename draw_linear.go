package glyphr

import "fmt"

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/canvas"

// Renders the composition as a single line, starting at the left
// margin and advancing the pen with the renderer's sizer.
//
// The canvas width must be set with [Renderer.SetCanvasSize]()
// beforehand. When the height is zero, it's computed from the
// vertical extent of the composition. Glyphs that overflow the right
// edge are cropped, and once a glyph would start at or past the edge
// the remaining ones are dropped. That's not an error.
//
// On error, the previous image is kept.
func (self *Renderer) Render(composition Composition) error {
	if self.provider == nil { return ErrNoProvider }
	if self.width <= 0 { return ErrNoCanvasWidth }

	glyphs, err := self.Resolve(composition)
	if err != nil { return err }
	extent, err := self.Extent(glyphs)
	if err != nil { return err }

	height := self.height
	if height <= 0 { height = max(extent.Height, 1) }
	target, err := canvas.New(self.width, height, self.background)
	if err != nil { return err }

	err = self.drawLinear(target, glyphs, extent.Baseline)
	if err != nil { return err }
	self.image = target
	self.lines = 0
	return nil
}

// Utility method equivalent to Render(Text(text)).
func (self *Renderer) RenderText(text string) error {
	return self.Render(Text(text))
}

// Utility method equivalent to Render(Glyphs(glyphs...)).
func (self *Renderer) RenderGlyphs(glyphs ...glyph.Index) error {
	return self.Render(Glyphs(glyphs...))
}

func (self *Renderer) drawLinear(target *canvas.Canvas, glyphs []glyph.Index, baseline int) error {
	penX := self.leftMargin
	for i, index := range glyphs {
		record, err := self.provider.RenderGlyph(index)
		if err != nil { return fmt.Errorf("glyphr: glyph %d at position %d: %w", index, i, err) }

		if !record.Empty() {
			x := penX + record.BearingLeft
			if x >= target.Width() {
				Logger().Debug("linear render truncated", "position", i, "glyph", index, "dropped", len(glyphs) - i)
				return nil
			}
			y := target.Height() - baseline - record.BearingTop
			err = self.composeClipped(target, &record, x, y)
			if err != nil { return err }
		}
		penX += self.sizer.GlyphAdvance(record)
	}
	return nil
}

// Composes the glyph bitmap at (x, y), cropping the columns that
// fall outside the canvas. A bitmap ending exactly at the right
// edge is not cropped.
func (self *Renderer) composeClipped(target *canvas.Canvas, record *glyph.Record, x, y int) error {
	bitmap, err := canvas.FromCoverage(record.Width, record.Rows, record.Pix, self.ink, self.background)
	if err != nil { return err }
	if x >= 0 && x + record.Width <= target.Width() {
		target.Compose(bitmap, x, y)
		return nil
	}

	left  := max(0, -x)
	right := min(record.Width, target.Width() - x)
	if right <= left { return nil } // fully off the left edge
	bitmap, err = bitmap.Crop(left, 0, right - left, record.Rows)
	if err != nil { return err }
	target.Compose(bitmap, x + left, y)
	Logger().Debug("glyph clipped", "glyph", record.Index, "x", x, "visible", right - left, "width", record.Width)
	return nil
}
