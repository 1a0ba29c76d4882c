package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to normalize points to the positive
	                           // quadrant starting from the fractional coords

	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, which is why we need so many offsets here.
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	x, y := self.normalize(point)
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	x, y := self.normalize(point)
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve to the given target passing
// through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.normalize(control)
	tx, ty := self.normalize(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.normalize(controlA)
	cbx, cby := self.normalize(controlB)
	tx , ty  := self.normalize(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(outline.Bounds(), origin)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask
	mask := image.NewAlpha(self.rasterizer.Bounds())

	// process outline
	processOutline(self, outline)

	// since the source texture is a uniform (an image that returns the same
	// color for any coordinate), the value of the point at which we want to
	// start sampling the texture (the fourth parameter) is unimportant.
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}

func (self *DefaultRasterizer) normalize(point fixed.Point26_6) (float32, float32) {
	return toFloat32(point.X + self.normOffset.X), toFloat32(point.Y + self.normOffset.Y)
}
