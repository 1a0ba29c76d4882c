package ttface

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/golang/freetype/truetype"

// Appends the contours of the loaded glyph to the given outline as
// sfnt segments. TrueType points grow upwards, while sfnt outlines
// grow downwards, so the Y axis is flipped.
func appendOutline(outline sfnt.Segments, buffer *truetype.GlyphBuf) sfnt.Segments {
	start := 0
	for _, end := range buffer.Ends {
		outline = appendContour(outline, buffer.Points[start : end])
		start = end
	}
	return outline
}

// Contours are quadratic splines where two consecutive off-curve
// points imply an on-curve point at their midpoint.
func appendContour(outline sfnt.Segments, points []truetype.Point) sfnt.Segments {
	if len(points) == 0 { return outline }

	first := toPoint(points[0])
	var others []truetype.Point
	if isOnCurve(points[0]) {
		others = points[1 : ]
	} else {
		last := toPoint(points[len(points) - 1])
		if isOnCurve(points[len(points) - 1]) {
			first = last
			others = points[ : len(points) - 1]
		} else {
			first = midpoint(first, last)
			others = points
		}
	}

	outline = append(outline, segment(sfnt.SegmentOpMoveTo, first))
	prev, prevOn := first, true
	for _, point := range others {
		current, on := toPoint(point), isOnCurve(point)
		switch {
		case on && prevOn:
			outline = append(outline, segment(sfnt.SegmentOpLineTo, current))
		case on:
			outline = append(outline, segment(sfnt.SegmentOpQuadTo, prev, current))
		case !prevOn:
			outline = append(outline, segment(sfnt.SegmentOpQuadTo, prev, midpoint(prev, current)))
		}
		prev, prevOn = current, on
	}

	// close the contour
	if prevOn {
		return append(outline, segment(sfnt.SegmentOpLineTo, first))
	}
	return append(outline, segment(sfnt.SegmentOpQuadTo, prev, first))
}

func segment(op sfnt.SegmentOp, args ...fixed.Point26_6) sfnt.Segment {
	seg := sfnt.Segment{ Op: op }
	copy(seg.Args[:], args)
	return seg
}

func isOnCurve(point truetype.Point) bool { return point.Flags & 0x01 != 0 }

func toPoint(point truetype.Point) fixed.Point26_6 {
	return fixed.Point26_6{ X: point.X, Y: -point.Y }
}

func midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{ X: (a.X + b.X)/2, Y: (a.Y + b.Y)/2 }
}
