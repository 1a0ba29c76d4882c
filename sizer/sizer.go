package sizer

import "github.com/tinne26/glyphr/glyph"

// When compositing glyphs in a line, renderers need to know how
// far to move the pen after each glyph. Sizers are the interface
// that renderers use to obtain that information.
//
// You rarely need to care about sizers, but they can be useful
// in the following cases:
//  - Render monospaced specimens from proportional fonts.
//  - Add extra horizontal spacing between glyphs.
type Sizer interface {
	// Returns the horizontal advance in whole pixels to apply
	// after compositing the given glyph record.
	GlyphAdvance(glyph.Record) int
}
