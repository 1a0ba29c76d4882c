// The mask subpackage defines the [Rasterizer] interface used by glyph
// providers and a default implementation based on golang.org/x/image/vector.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// font glyphs are extracted from font files as outlines (sets of lines
// and curves), and before they can be composited into a canvas they have
// to be converted into 8-bit coverage masks (grids of pixels where each
// value indicates how much of the pixel is covered by the glyph).
//
// Masks are returned as [*image.Alpha] values whose bounds are relative
// to the glyph origin, which makes bearings trivial to derive.
package mask
