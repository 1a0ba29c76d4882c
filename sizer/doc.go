// The sizer subpackage defines the [Sizer] interface used by renderers
// to decide the horizontal pen advance after each glyph, alongside a
// few basic implementations.
package sizer
