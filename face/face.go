package face

import "fmt"
import "math"
import "errors"
import "sync/atomic"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"

var _ glyph.Provider = (*Face)(nil)

var ErrInvalidSize = errors.New("face: size and dpi must be positive")

// A [glyph.Provider] that extracts outlines from an [sfnt.Font]
// and rasterizes them with a [mask.Rasterizer]. Outlines are
// not hinted.
//
// Faces can't be used concurrently.
type Face struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	ppem fixed.Int26_6
	rasterizer mask.Rasterizer
	cacheHandler cache.GlyphCacheHandler
	cacheKey uint64
}

// Creates a face for the given font at the given size in points
// and resolution in dots per inch. At 72 dpi, the size is the
// number of pixels per em.
func New(font *sfnt.Font, size, dpi float64) (*Face, error) {
	if font == nil { return nil, errors.New("face: nil font") }
	if !(size > 0) || !(dpi > 0) { return nil, ErrInvalidSize }
	ppem := fixed.Int26_6(math.Round(size*dpi*64/72))
	if ppem <= 0 { return nil, ErrInvalidSize }
	return &Face{
		font: font,
		ppem: ppem,
		rasterizer: &mask.DefaultRasterizer{},
		cacheKey: NewCacheKey(),
	}, nil
}

// Same as [New](), but parsing the font from raw bytes first.
func NewFromBytes(data []byte, size, dpi float64) (*Face, error) {
	font, err := sfnt.Parse(data)
	if err != nil { return nil, fmt.Errorf("face: %w", err) }
	return New(font, size, dpi)
}

// Returns the underlying font.
func (self *Face) Font() *sfnt.Font { return self.font }

// Returns the size in pixels per em.
func (self *Face) PPEM() fixed.Int26_6 { return self.ppem }

// Returns the number of glyphs in the font.
func (self *Face) NumGlyphs() int { return self.font.NumGlyphs() }

// Sets the glyph cache used for the rasterized masks. Passing
// nil disables caching.
func (self *Face) SetCache(glyphCache *cache.DefaultCache) {
	if glyphCache == nil {
		self.cacheHandler = nil
		return
	}
	handler := glyphCache.NewHandler()
	handler.NotifyFontChange(self.cacheKey)
	handler.NotifyRasterizerChange(self.rasterizer)
	handler.NotifySizeChange(self.ppem)
	self.cacheHandler = handler
}

// Sets the rasterizer used to turn outlines into masks.
// Nil values will panic.
func (self *Face) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
	if self.cacheHandler != nil {
		self.cacheHandler.NotifyRasterizerChange(rasterizer)
	}
}

// Satisfies the [glyph.Provider] interface. Errors and unmapped
// code points both resolve to the notdef glyph.
func (self *Face) GlyphIndex(codePoint rune) glyph.Index {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return glyph.Index(index)
}

// Satisfies the [glyph.Provider] interface.
func (self *Face) RenderGlyph(index glyph.Index) (glyph.Record, error) {
	err := self.checkIndex(index)
	if err != nil { return glyph.Record{}, err }

	advance, err := self.font.GlyphAdvance(&self.buffer, sfnt.GlyphIndex(index), self.ppem, xfont.HintingNone)
	if err != nil { return glyph.Record{}, fmt.Errorf("face: glyph %d advance: %w", index, err) }

	alpha, err := self.glyphMask(index)
	if err != nil { return glyph.Record{}, err }
	return RecordFromMask(index, advance, alpha), nil
}

// Satisfies the [glyph.Provider] interface.
func (self *Face) GlyphBounds(index glyph.Index) (glyph.Bounds, error) {
	err := self.checkIndex(index)
	if err != nil { return glyph.Bounds{}, err }

	bounds, _, err := self.font.GlyphBounds(&self.buffer, sfnt.GlyphIndex(index), self.ppem, xfont.HintingNone)
	if err != nil { return glyph.Bounds{}, fmt.Errorf("face: glyph %d bounds: %w", index, err) }

	// sfnt bounds grow downwards
	return glyph.Bounds{
		XMin: bounds.Min.X.Floor(),
		XMax: bounds.Max.X.Ceil(),
		YMin: -bounds.Max.Y.Ceil(),
		YMax: -bounds.Min.Y.Floor(),
	}, nil
}

// ---- helpers ----

func (self *Face) checkIndex(index glyph.Index) error {
	if int(index) >= self.font.NumGlyphs() {
		return fmt.Errorf("face: %w (%d)", glyph.ErrUnknownGlyph, index)
	}
	return nil
}

func (self *Face) glyphMask(index glyph.Index) (cache.GlyphMask, error) {
	if self.cacheHandler != nil {
		alpha, found := self.cacheHandler.GetMask(index)
		if found { return alpha, nil }
	}

	outline, err := self.font.LoadGlyph(&self.buffer, sfnt.GlyphIndex(index), self.ppem, nil)
	if err != nil { return nil, fmt.Errorf("face: glyph %d outline: %w", index, err) }
	alpha, err := mask.Rasterize(outline, self.rasterizer, fixed.Point26_6{})
	if err != nil { return nil, fmt.Errorf("face: glyph %d rasterization: %w", index, err) }

	if self.cacheHandler != nil {
		self.cacheHandler.PassMask(index, alpha)
	}
	return alpha, nil
}

var cacheKeySeq atomic.Uint64

// Returns a new key to tell faces apart in glyph caches. Keys are
// never repeated within a process, so masks from a discarded face
// can't be served to a later one.
func NewCacheKey() uint64 {
	return cacheKeySeq.Add(1)
}
