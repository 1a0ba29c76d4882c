package mask

import "image"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

func moveTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

func lineTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

// square from (x, y) to (x + size, y + size), in whole pixels
func squareOutline(x, y, size int) sfnt.Segments {
	segments := make([]sfnt.Segment, 0, 5)
	segments = moveTo(segments, fixed.I(x), fixed.I(y))
	segments = lineTo(segments, fixed.I(x + size), fixed.I(y))
	segments = lineTo(segments, fixed.I(x + size), fixed.I(y + size))
	segments = lineTo(segments, fixed.I(x), fixed.I(y + size))
	segments = lineTo(segments, fixed.I(x), fixed.I(y))
	return sfnt.Segments(segments)
}

func TestRasterizeSquare(t *testing.T) {
	rast := &DefaultRasterizer{}
	mask, err := Rasterize(squareOutline(1, -4, 4), rast, fixed.Point26_6{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if mask == nil { t.Fatal("expected non-nil mask") }

	expected := image.Rect(1, -4, 5, 0)
	if mask.Rect != expected {
		t.Fatalf("expected mask bounds %v, got %v", expected, mask.Rect)
	}
	for y := expected.Min.Y; y < expected.Max.Y; y++ {
		for x := expected.Min.X; x < expected.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 255 {
				t.Fatalf("expected full coverage at (%d, %d), got %d", x, y, mask.AlphaAt(x, y).A)
			}
		}
	}
}

func TestRasterizeFractOrigin(t *testing.T) {
	rast := &DefaultRasterizer{}
	mask, err := Rasterize(squareOutline(0, -2, 2), rast, fixed.Point26_6{X: 32})
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	// half pixel shift makes the mask one pixel wider with partial edges
	if mask.Rect.Dx() != 3 || mask.Rect.Dy() != 2 {
		t.Fatalf("expected 3x2 mask, got %v", mask.Rect)
	}
	left := mask.AlphaAt(mask.Rect.Min.X, mask.Rect.Min.Y).A
	if left == 0 || left == 255 {
		t.Fatalf("expected partial coverage on the left edge, got %d", left)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	rast := &DefaultRasterizer{}
	var segments []sfnt.Segment
	segments = moveTo(segments, fixed.I(3), fixed.I(3))
	mask, err := Rasterize(sfnt.Segments(segments), rast, fixed.Point26_6{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if mask != nil { t.Fatal("expected nil mask for outline without contours") }

	mask, err = Rasterize(nil, rast, fixed.Point26_6{})
	if err != nil || mask != nil { t.Fatal("expected nil mask and error for nil outline") }
}

func TestFigureOutBounds(t *testing.T) {
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: -70, Y: -640},
		Max: fixed.Point26_6{X: 300, Y: 10},
	}
	width, height, norm, offset := figureOutBounds(bounds, fixed.Point26_6{})
	if offset != image.Pt(-2, -10) {
		t.Fatalf("expected mask offset (-2, -10), got %v", offset)
	}
	if norm.X != fixed.I(2) || norm.Y != fixed.I(10) {
		t.Fatalf("unexpected normalization offset %v", norm)
	}
	if width != 7 || height != 11 {
		t.Fatalf("expected 7x11, got %dx%d", width, height)
	}
}

func TestThresholdRasterizer(t *testing.T) {
	rast := &ThresholdRasterizer{}
	mask, err := Rasterize(squareOutline(0, -2, 2), rast, fixed.Point26_6{X: 20})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	for _, value := range mask.Pix {
		if value != 0 && value != 255 { t.Fatalf("expected quantized values, got %d", value) }
	}

	strict := &ThresholdRasterizer{ Threshold: 200 }
	if strict.Signature() == rast.Signature() { t.Fatal("thresholds must have different signatures") }
	if rast.Signature() == (&DefaultRasterizer{}).Signature() { t.Fatal("signature must differ from the default rasterizer") }
}
