package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for glyph outline rasterization to an
// 8-bit coverage mask. This is what providers use to turn the outlines
// extracted from font files into the bitmaps that get composited.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63). The returned mask bounds are relative to the glyph origin,
	// so Rect.Min.X is the left bearing and -Rect.Min.Y the top bearing.
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)

	// The signature returns a uint64 that can be used with glyph caches
	// in order to tell rasterizers apart. When using multiple mask
	// rasterizers with a single cache, you normally want to make sure
	// that their signatures are different.
	Signature() uint64
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fixed.Point26_6)

	// Create a segment to the given coordinate.
	LineTo(fixed.Point26_6)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fixed.Point26_6, fixed.Point26_6)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the given fractional position. Only the fractional
// part of the given dot is considered.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
