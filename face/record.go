package face

import "image"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/glyph"

// Converts a rasterized mask into a [glyph.Record]. The mask bounds
// must be relative to the glyph origin, as returned by [mask.Rasterize]().
// Nil or empty masks produce records without bitmap.
//
// The pixels are copied, so the mask can be reused afterwards.
func RecordFromMask(index glyph.Index, advance fixed.Int26_6, alpha *image.Alpha) glyph.Record {
	record := glyph.Record{ Index: index, Advance: advance }
	if alpha == nil || alpha.Rect.Empty() { return record }

	width, rows := alpha.Rect.Dx(), alpha.Rect.Dy()
	record.Width = width
	record.Rows  = rows
	record.BearingLeft = alpha.Rect.Min.X
	record.BearingTop  = -alpha.Rect.Min.Y
	record.Pix = make([]byte, width*rows)
	for y := 0; y < rows; y++ {
		start := y*alpha.Stride
		copy(record.Pix[y*width : (y + 1)*width], alpha.Pix[start : start + width])
	}
	return record
}
