package glyphr

import "io"

import "github.com/tinne26/glyphr/canvas"

// Replaces the current image with a blank one at the configured canvas
// size. When the configured height is zero, the height of the current
// image is kept (or 1 if there's no image yet).
func (self *Renderer) ResetImage() error {
	if self.width <= 0 { return ErrNoCanvasWidth }
	height := self.height
	if height <= 0 {
		height = 1
		if self.image != nil { height = self.image.Height() }
	}
	image, err := canvas.New(self.width, height, self.background)
	if err != nil { return err }
	self.image = image
	return nil
}

// Crops the current image in place to the given region, which must be
// fully contained in the image.
func (self *Renderer) Crop(x, y, width, height int) error {
	if self.image == nil { return ErrNoImage }
	return self.image.CropInPlace(x, y, width, height)
}

// Encodes the current image as PNG.
func (self *Renderer) WritePNG(w io.Writer) error {
	if self.image == nil { return ErrNoImage }
	return self.image.EncodePNG(w)
}
