// The face subpackage implements a [glyph.Provider] on top of
// [golang.org/x/image/font/sfnt], supporting TrueType and OpenType
// (CFF) fonts, with optional glyph mask caching.
package face
