package canvas

import "bytes"
import "errors"
import "image"
import "image/color"
import "image/png"
import "testing"

var white = color.RGBA{255, 255, 255, 255}
var black = color.RGBA{0, 0, 0, 255}
var gray  = color.RGBA{128, 128, 128, 255}

func TestNew(t *testing.T) {
	_, err := New(0, 10, white)
	if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize, got %v", err) }
	_, err = New(10, -1, white)
	if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize, got %v", err) }

	canvas, err := New(7, 3, white)
	if err != nil { t.Fatal(err) }
	if canvas.Width() != 7 || canvas.Height() != 3 {
		t.Fatalf("expected 7x3, got %dx%d", canvas.Width(), canvas.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			if canvas.RGBAAt(x, y) != white { t.Fatalf("expected white background at (%d, %d)", x, y) }
		}
	}
}

func TestFromCoverage(t *testing.T) {
	pix := []byte{0, 255, 128, 255}
	glyph, err := FromCoverage(2, 2, pix, black, white)
	if err != nil { t.Fatal(err) }
	if glyph.RGBAAt(0, 0) != white { t.Fatalf("zero coverage must be background, got %v", glyph.RGBAAt(0, 0)) }
	if glyph.RGBAAt(1, 0) != black { t.Fatalf("full coverage must be ink, got %v", glyph.RGBAAt(1, 0)) }
	mid := glyph.RGBAAt(0, 1)
	if mid.R != 127 || mid.A != 255 { t.Fatalf("unexpected partial coverage color %v", mid) }

	_, err = FromCoverage(3, 3, pix, black, white)
	if !errors.Is(err, ErrOutOfBounds) { t.Fatalf("expected ErrOutOfBounds, got %v", err) }
	_, err = FromCoverage(0, 3, pix, black, white)
	if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize, got %v", err) }
}

func TestComposeClips(t *testing.T) {
	target, _ := New(4, 4, white)
	block, _ := New(3, 3, black)

	// partially outside on every side, must not panic nor wrap
	target.Compose(block, -2, -2)
	target.Compose(block, 3, 3)

	blacks := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if target.RGBAAt(x, y) == black { blacks += 1 }
		}
	}
	if blacks != 2 { t.Fatalf("expected 2 black pixels, got %d", blacks) }
	if target.RGBAAt(0, 0) != black || target.RGBAAt(3, 3) != black {
		t.Fatal("expected corners to be black")
	}
}

func TestComposeOverwrites(t *testing.T) {
	target, _ := New(2, 1, black)
	glyph, _ := FromCoverage(1, 1, []byte{0}, black, white)
	target.Compose(glyph, 1, 0)
	if target.RGBAAt(1, 0) != white {
		t.Fatal("compose must replace pixels even for zero coverage")
	}
}

func TestCrop(t *testing.T) {
	source, _ := New(5, 5, white)
	source.RGBA().SetRGBA(2, 3, black)

	cropped, err := source.Crop(2, 2, 2, 2)
	if err != nil { t.Fatal(err) }
	if cropped.Width() != 2 || cropped.Height() != 2 { t.Fatalf("unexpected size %v", cropped.Bounds()) }
	if cropped.RGBAAt(0, 1) != black { t.Fatal("expected pixel to move with the crop") }
	if source.Width() != 5 { t.Fatal("crop must not modify the source") }

	_, err = source.Crop(4, 4, 2, 2)
	if !errors.Is(err, ErrOutOfBounds) { t.Fatalf("expected ErrOutOfBounds, got %v", err) }
	_, err = source.Crop(0, 0, 0, 2)
	if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize, got %v", err) }

	err = source.CropInPlace(1, 1, 3, 3)
	if err != nil { t.Fatal(err) }
	if source.Width() != 3 || source.RGBAAt(1, 2) != black { t.Fatal("unexpected in place crop result") }
}

func TestDrawLine(t *testing.T) {
	canvas, _ := New(5, 5, white)
	canvas.DrawLine(2, 0, 2, 4, gray)
	canvas.DrawLine(0, 1, 4, 1, gray)
	canvas.DrawLine(-3, 4, 10, 4, gray) // clipped

	count := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if canvas.RGBAAt(x, y) == gray { count += 1 }
		}
	}
	if count != 5 + 4 + 4 { t.Fatalf("expected 13 gray pixels, got %d", count) }

	diagonal, _ := New(4, 4, white)
	diagonal.DrawLine(3, 3, 0, 0, black)
	for i := 0; i < 4; i++ {
		if diagonal.RGBAAt(i, i) != black { t.Fatalf("expected diagonal pixel at %d", i) }
	}
}

func TestScaleAndEncode(t *testing.T) {
	canvas, _ := New(2, 1, white)
	canvas.RGBA().SetRGBA(1, 0, black)
	scaled := canvas.Scale(3)
	if scaled.Width() != 6 || scaled.Height() != 3 { t.Fatalf("unexpected scaled size %v", scaled.Bounds()) }
	if scaled.RGBAAt(2, 2) != white || scaled.RGBAAt(3, 0) != black {
		t.Fatal("unexpected nearest neighbor sampling")
	}

	var bufferA, bufferB bytes.Buffer
	if err := canvas.EncodePNG(&bufferA); err != nil { t.Fatal(err) }
	if err := canvas.EncodePNG(&bufferB); err != nil { t.Fatal(err) }
	if !bytes.Equal(bufferA.Bytes(), bufferB.Bytes()) { t.Fatal("png encoding must be deterministic") }

	decoded, err := png.Decode(&bufferA)
	if err != nil { t.Fatal(err) }
	if decoded.Bounds() != image.Rect(0, 0, 2, 1) { t.Fatalf("unexpected decoded bounds %v", decoded.Bounds()) }
	if !canvas.Equal(FromImage(toRGBA(decoded))) { t.Fatal("decoded image must match") }
}

func toRGBA(img image.Image) *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}
