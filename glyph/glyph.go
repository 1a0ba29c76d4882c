package glyph

import "errors"

import "golang.org/x/image/math/fixed"

// Index identifies a glyph within a specific font. Index 0 is
// conventionally the "notdef" glyph, returned when a code point
// has no mapping in the font.
type Index uint16

// Returned by providers when a glyph index is not present in
// the font. Providers may wrap it with additional context.
var ErrUnknownGlyph = errors.New("glyph index not present in font")

// A rasterized glyph. Records are produced by a [Provider] for a
// single glyph and must be treated as read-only once returned.
//
// The bitmap is an 8-bit coverage buffer of Width*Rows bytes, row
// by row, with 0 meaning no ink and 255 meaning full ink. Bearings
// go from the pen origin (on the baseline) to the top-left corner of
// the bitmap: BearingLeft grows to the right and BearingTop grows up.
type Record struct {
	Index       Index
	Width       int
	Rows        int
	BearingLeft int
	BearingTop  int
	Advance     fixed.Int26_6
	Pix         []byte
}

// Returns whether the record has no visible bitmap (e.g. spaces).
func (self *Record) Empty() bool {
	return self.Width <= 0 || self.Rows <= 0
}

// Returns the coverage value at the given bitmap coordinates,
// or 0 if the coordinates fall outside the bitmap.
func (self *Record) CoverageAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Rows { return 0 }
	return self.Pix[y*self.Width + x]
}

// Ink bounds of a glyph in whole pixels. Unlike image coordinates,
// the Y axis grows upwards from the baseline, so descenders have a
// negative YMin.
type Bounds struct {
	XMin, YMin int
	XMax, YMax int
}

// Horizontal ink extent.
func (self Bounds) Width() int { return self.XMax - self.XMin }

// Vertical ink extent.
func (self Bounds) Height() int { return self.YMax - self.YMin }
