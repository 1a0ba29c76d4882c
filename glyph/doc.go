// The glyph subpackage defines the data exchanged between renderers
// and glyph providers: glyph indices, rasterized glyph [Record] values,
// pixel space ink [Bounds] and the [Provider] interface itself.
//
// Default providers can be found in the face (golang.org/x/image/font/sfnt)
// and ttface (github.com/golang/freetype/truetype) subpackages.
package glyph
