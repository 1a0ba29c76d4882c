package glyphr

import "fmt"

import "github.com/tinne26/glyphr/glyph"

// Vertical extent of a set of glyphs, in pixels.
type Extent struct {
	Height int   // span between the lowest and highest ink, baseline included
	Baseline int // distance from the bottom of the span to the baseline
}

// Computes the vertical extent of the given glyphs from their ink
// bounds. The accumulators start at the baseline, so the extent
// always includes it: glyphs entirely above the baseline have a
// zero Baseline, and the Height is never negative.
func (self *Renderer) Extent(glyphs []glyph.Index) (Extent, error) {
	if self.provider == nil { return Extent{}, ErrNoProvider }

	var minY, maxY int
	for _, index := range glyphs {
		bounds, err := self.provider.GlyphBounds(index)
		if err != nil { return Extent{}, fmt.Errorf("glyphr: bounds for glyph %d: %w", index, err) }
		minY = min(minY, bounds.YMin)
		maxY = max(maxY, bounds.YMax)
	}
	return Extent{ Height: maxY - minY, Baseline: -minY }, nil
}
