package glyph

// A Provider gives access to the glyphs of a font at a fixed size
// and resolution. This is the only source of metrics that renderers
// use; font parsing, hinting and rasterization all happen behind it.
//
// Providers are not required to be safe for concurrent use.
type Provider interface {
	// Maps a code point to its glyph index. Unmapped code points
	// return 0 (the notdef glyph).
	GlyphIndex(codePoint rune) Index

	// Rasterizes the given glyph without hinting. Indices that can't
	// be resolved by the font must return an error, typically wrapping
	// [ErrUnknownGlyph].
	RenderGlyph(index Index) (Record, error)

	// Returns the ink bounds of the given glyph in pixel space. These
	// can differ from the bitmap box returned by RenderGlyph.
	GlyphBounds(index Index) (Bounds, error)
}
