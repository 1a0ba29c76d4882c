// The canvas subpackage provides the raster target used by glyphr
// renderers: an RGBA pixel buffer with overwrite compositing, cropping,
// line drawing, nearest neighbor scaling and PNG encoding.
//
// Glyph bitmaps are converted to canvases with [FromCoverage]() and then
// composited with [Canvas.Compose](), which replaces the target pixels
// instead of blending with them.
package canvas
