package sizer

import "github.com/tinne26/glyphr/glyph"

var _ Sizer = PaddedSizer{}

// Like [DefaultSizer], but adds a configurable padding to each
// advance. Negative paddings tighten the text.
type PaddedSizer struct {
	Padding int
}

// Satisfies the [Sizer] interface.
func (self PaddedSizer) GlyphAdvance(record glyph.Record) int {
	return record.Advance.Round() + self.Padding
}
