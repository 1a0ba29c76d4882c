package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin. This is used in Rasterize() functions.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()

	var normOffset fixed.Point26_6
	normOffset.X = fixed.I(-floorMinX) + fractPart(origin.X)
	normOffset.Y = fixed.I(-floorMinY) + fractPart(origin.Y)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, image.Pt(floorMinX, floorMinY)
}

// Positive fractional part of a 26.6 value, between 0 and 0:63.
func fractPart(value fixed.Int26_6) fixed.Int26_6 {
	return value & 0x3F
}

func toFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}
