package sizer

import "github.com/tinne26/glyphr/glyph"

var _ Sizer = DefaultSizer{}

// The default [Sizer] used by renderers. It rounds the
// glyph's own advance to the nearest pixel.
type DefaultSizer struct {}

// Satisfies the [Sizer] interface.
func (DefaultSizer) GlyphAdvance(record glyph.Record) int {
	return record.Advance.Round()
}
