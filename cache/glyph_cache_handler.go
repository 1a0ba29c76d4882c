package cache

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"

// A [GlyphCacheHandler] acts as an intermediary between a glyph cache
// and a glyph provider, giving the latter a clear target interface to
// conform to while abstracting the details of the underlying cache.
//
// Glyph cache handlers can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
type GlyphCacheHandler interface {
	// Notifies that the font in use has changed. The key must be
	// unique per font for as long as the cache is alive.
	NotifyFontChange(fontKey uint64)

	// Notifies that the glyph size (pixels per em) has changed.
	NotifySizeChange(fixed.Int26_6)

	// Notifies that the rasterizer has changed. The rasterizer's
	// Signature() is used to tell them apart.
	NotifyRasterizerChange(mask.Rasterizer)

	// Gets the mask image for the given glyph index and current configuration.
	// The bool indicates whether the mask has been found (as it may be nil).
	GetMask(glyph.Index) (GlyphMask, bool)

	// Passes a mask image for the given glyph index and current
	// configuration to the underlying cache. PassMask should only
	// be called after GetMask() fails.
	PassMask(glyph.Index, GlyphMask)
}
