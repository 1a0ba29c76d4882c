package sizer

import "github.com/tinne26/glyphr/glyph"

var _ Sizer = FixedSizer{}

// A [Sizer] that ignores glyph metrics and always advances
// by the same amount. Useful for monospaced layouts.
type FixedSizer struct {
	Advance int
}

// Satisfies the [Sizer] interface.
func (self FixedSizer) GlyphAdvance(glyph.Record) int {
	return self.Advance
}
