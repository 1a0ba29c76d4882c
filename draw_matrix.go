package glyphr

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/canvas"

// Renders the given glyphs in a grid of fixed size cells, as configured
// with [Renderer.SetGrid](). Rows are filled left to right and wrap after
// ItemsPerLine glyphs. Each glyph is centered in its cell according to its
// ink bounds, with its baseline on the row's baseline.
//
// Glyphs that the provider can't render are skipped without using a
// cell. Blank glyphs (e.g. spaces) still use a cell. After rendering,
// [Renderer.Lines]() reports the number of rows that received glyphs.
// Gridlines are always drawn between columns, and between rows only
// where both rows received glyphs, so a matrix without any rendered
// glyph still shows its column separators.
func (self *Renderer) RenderMatrix(glyphs []glyph.Index) error {
	if self.provider == nil { return ErrNoProvider }
	if !self.grid.valid() { return ErrInvalidGrid }

	per := self.grid.ItemsPerLine
	rows := max(1, (len(glyphs) + per - 1)/per)
	target, err := canvas.New(per*self.grid.HorzAdvance, rows*self.grid.VertAdvance, self.background)
	if err != nil { return err }

	topMargin := self.GetTopMargin()
	lines, err := self.drawMatrix(target, glyphs, topMargin)
	if err != nil { return err }
	if self.internalFlags & internalFlagNoGridlines == 0 {
		self.drawGridlines(target, topMargin, lines)
	}
	self.image = target
	self.lines = lines
	return nil
}

func (self *Renderer) drawMatrix(target *canvas.Canvas, glyphs []glyph.Index, topMargin int) (int, error) {
	horzAdvance, vertAdvance := self.grid.HorzAdvance, self.grid.VertAdvance
	col, x, y := 1, 0, topMargin
	var lines int
	for i, index := range glyphs {
		record, bounds, ok := self.matrixGlyph(i, index)
		if !ok { continue }

		if col == 1 { lines += 1 }
		if !record.Empty() {
			bitmap, err := canvas.FromCoverage(record.Width, record.Rows, record.Pix, self.ink, self.background)
			if err != nil { return lines, err }
			target.Compose(bitmap, x + horzAdvance/2 - bounds.Width()/2, y - record.BearingTop)
		}

		if col == self.grid.ItemsPerLine {
			col, x = 1, 0
			y += vertAdvance
		} else {
			col += 1
			x += horzAdvance
		}
	}
	return lines, nil
}

func (self *Renderer) matrixGlyph(position int, index glyph.Index) (glyph.Record, glyph.Bounds, bool) {
	record, err := self.provider.RenderGlyph(index)
	if err != nil {
		Logger().Debug("matrix glyph skipped", "position", position, "glyph", index, "err", err)
		return record, glyph.Bounds{}, false
	}
	bounds, err := self.provider.GlyphBounds(index)
	if err != nil {
		Logger().Debug("matrix glyph skipped", "position", position, "glyph", index, "err", err)
		return record, bounds, false
	}
	return record, bounds, true
}
