package canvas

import "io"
import "bytes"
import "errors"
import "image"
import "image/color"
import "image/png"

import "golang.org/x/image/draw"

var ErrInvalidSize = errors.New("canvas: width and height must be positive")
var ErrOutOfBounds = errors.New("canvas: region out of bounds")

// A Canvas is an RGBA pixel buffer with its origin at (0, 0).
//
// All drawing operations are clipped to the canvas bounds, so
// pixels outside the declared width and height are never written.
type Canvas struct {
	rgba *image.RGBA
}

// Creates a new canvas filled with the given background color.
func New(width, height int, background color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 { return nil, ErrInvalidSize }
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Rect, image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{ rgba: rgba }, nil
}

// Creates a canvas from a glyph coverage buffer. Each pixel is the
// interpolation between background and ink given by its coverage
// value, so compositing the result in overwrite mode over a canvas
// with the same background is equivalent to drawing the glyph.
func FromCoverage(width, rows int, pix []byte, ink, background color.Color) (*Canvas, error) {
	if width <= 0 || rows <= 0 { return nil, ErrInvalidSize }
	if len(pix) < width*rows { return nil, ErrOutOfBounds }

	inkRGBA := color.RGBAModel.Convert(ink).(color.RGBA)
	bkgRGBA := color.RGBAModel.Convert(background).(color.RGBA)
	rgba := image.NewRGBA(image.Rect(0, 0, width, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			level := pix[y*width + x]
			rgba.SetRGBA(x, y, mixRGBA(bkgRGBA, inkRGBA, level))
		}
	}
	return &Canvas{ rgba: rgba }, nil
}

// Wraps an existing image. The image is translated so its
// bounds start at (0, 0) if necessary.
func FromImage(img *image.RGBA) *Canvas {
	if img.Rect.Min != (image.Point{}) {
		img = &image.RGBA{
			Pix: img.Pix,
			Stride: img.Stride,
			Rect: img.Rect.Sub(img.Rect.Min),
		}
	}
	return &Canvas{ rgba: img }
}

// Returns the canvas width in pixels.
func (self *Canvas) Width() int { return self.rgba.Rect.Dx() }

// Returns the canvas height in pixels.
func (self *Canvas) Height() int { return self.rgba.Rect.Dy() }

// Returns the canvas bounds.
func (self *Canvas) Bounds() image.Rectangle { return self.rgba.Rect }

// Returns the underlying image. Modifications to it are visible
// through the canvas.
func (self *Canvas) RGBA() *image.RGBA { return self.rgba }

// Returns the color at the given coordinates.
func (self *Canvas) RGBAAt(x, y int) color.RGBA { return self.rgba.RGBAAt(x, y) }

// Composites src over the canvas at (x, y) replacing existing pixels.
// The parts of src that fall outside the canvas are discarded.
func (self *Canvas) Compose(src *Canvas, x, y int) {
	target := src.rgba.Rect.Add(image.Pt(x, y))
	draw.Draw(self.rgba, target, src.rgba, image.Point{}, draw.Src)
}

// Returns a copy of the given region as a new canvas. The region
// must be non-empty and fully contained in the canvas.
func (self *Canvas) Crop(x, y, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 { return nil, ErrInvalidSize }
	region := image.Rect(x, y, x + width, y + height)
	if !region.In(self.rgba.Rect) { return nil, ErrOutOfBounds }

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Copy(rgba, image.Point{}, self.rgba, region, draw.Src, nil)
	return &Canvas{ rgba: rgba }, nil
}

// Like [Canvas.Crop](), but replaces the canvas contents with the
// cropped region.
func (self *Canvas) CropInPlace(x, y, width, height int) error {
	cropped, err := self.Crop(x, y, width, height)
	if err != nil { return err }
	self.rgba = cropped.rgba
	return nil
}

// Returns a copy of the canvas scaled by the given integer factor
// using nearest neighbor sampling. Factors below 2 return a copy.
func (self *Canvas) Scale(factor int) *Canvas {
	if factor < 1 { factor = 1 }
	bounds := image.Rect(0, 0, self.Width()*factor, self.Height()*factor)
	rgba := image.NewRGBA(bounds)
	draw.NearestNeighbor.Scale(rgba, bounds, self.rgba, self.rgba.Rect, draw.Src, nil)
	return &Canvas{ rgba: rgba }
}

// Reports whether both canvases have the same size and pixels.
func (self *Canvas) Equal(other *Canvas) bool {
	if other == nil { return false }
	if self.rgba.Rect != other.rgba.Rect { return false }
	return bytes.Equal(self.rgba.Pix, other.rgba.Pix)
}

// Encodes the canvas as a PNG image.
func (self *Canvas) EncodePNG(w io.Writer) error {
	encoder := png.Encoder{ CompressionLevel: png.DefaultCompression }
	return encoder.Encode(w, self.rgba)
}

// ---- helpers ----

func mixRGBA(from, to color.RGBA, level uint8) color.RGBA {
	if level == 0   { return from }
	if level == 255 { return to }
	return color.RGBA{
		R: mixChannel(from.R, to.R, level),
		G: mixChannel(from.G, to.G, level),
		B: mixChannel(from.B, to.B, level),
		A: mixChannel(from.A, to.A, level),
	}
}

func mixChannel(from, to, level uint8) uint8 {
	l := uint32(level)
	return uint8((uint32(from)*(255 - l) + uint32(to)*l + 127)/255)
}
