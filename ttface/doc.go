// The ttface subpackage implements an alternative [glyph.Provider]
// on top of github.com/golang/freetype/truetype. It exists mainly to
// compare rasterization against the face subpackage.
package ttface
