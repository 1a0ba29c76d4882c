package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*ThresholdRasterizer)(nil)

// A rasterizer that quantizes coverage values to fully opaque or
// fully transparent, which keeps upscaled glyph strips free of
// antialiasing. Values at or above the threshold become opaque. A
// zero threshold is treated as 128.
type ThresholdRasterizer struct {
	DefaultRasterizer
	Threshold uint8
}

// Satisfies the [Rasterizer] interface. Different thresholds have
// different signatures.
func (self *ThresholdRasterizer) Signature() uint64 {
	return 0x7468_0000_0000_0000 | uint64(self.threshold())
}

// Satisfies the [Rasterizer] interface.
func (self *ThresholdRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil { return mask, err }
	threshold := self.threshold()
	for i, value := range mask.Pix {
		if value < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}

func (self *ThresholdRasterizer) threshold() uint8 {
	if self.Threshold == 0 { return 128 }
	return self.Threshold
}
