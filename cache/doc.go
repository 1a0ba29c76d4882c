// The cache subpackage defines the [GlyphCacheHandler] interface used
// by glyph providers and a default bounded cache implementation.
//
// Rasterizing glyph outlines is the most expensive step when rendering
// glyph strips and glyph matrices, and specimen sheets tend to repeat the
// same glyphs a lot, so providers can be given a cache handler to reuse
// masks across renders.
//
// To give a size reference, a glyph mask at 48px is around 30x36 pixels,
// so each mask takes about 1KiB. A few hundred KiBs are enough to keep
// a whole latin font at a single size.
package cache
