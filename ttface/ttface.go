package ttface

import "fmt"
import "math"
import "errors"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/golang/freetype/truetype"

import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/face"
import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"

var _ glyph.Provider = (*Face)(nil)

var ErrInvalidSize = errors.New("ttface: size and dpi must be positive")

// A [glyph.Provider] backed by the freetype TrueType loader. Only
// TrueType outlines are supported; use the face package for CFF
// fonts.
//
// The outlines are converted to [sfnt.Segments], so masks come out
// of the same rasterizers used by face.Face. Faces can't be used
// concurrently.
type Face struct {
	font *truetype.Font
	numGlyphs int
	scale fixed.Int26_6
	glyphBuf truetype.GlyphBuf
	outline sfnt.Segments
	rasterizer mask.Rasterizer
	cacheHandler cache.GlyphCacheHandler
	cacheKey uint64
}

// Creates a face from raw TrueType data at the given size in points
// and resolution in dots per inch.
func New(data []byte, size, dpi float64) (*Face, error) {
	if !(size > 0) || !(dpi > 0) { return nil, ErrInvalidSize }
	scale := fixed.Int26_6(math.Round(size*dpi*64/72))
	if scale <= 0 { return nil, ErrInvalidSize }

	font, err := truetype.Parse(data)
	if err != nil { return nil, fmt.Errorf("ttface: %w", err) }

	// the freetype font doesn't expose its glyph count
	info, err := sfnt.Parse(data)
	if err != nil { return nil, fmt.Errorf("ttface: %w", err) }

	return &Face{
		font: font,
		numGlyphs: info.NumGlyphs(),
		scale: scale,
		rasterizer: &mask.DefaultRasterizer{},
		cacheKey: face.NewCacheKey(),
	}, nil
}

// Returns the size in pixels per em.
func (self *Face) PPEM() fixed.Int26_6 { return self.scale }

// Returns the number of glyphs in the font.
func (self *Face) NumGlyphs() int { return self.numGlyphs }

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
	handler.NotifySizeChange(self.scale)
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

// Satisfies the [glyph.Provider] interface.
func (self *Face) GlyphIndex(codePoint rune) glyph.Index {
	return glyph.Index(self.font.Index(codePoint))
}

// Satisfies the [glyph.Provider] interface.
func (self *Face) RenderGlyph(index glyph.Index) (glyph.Record, error) {
	err := self.load(index)
	if err != nil { return glyph.Record{}, err }
	advance := self.glyphBuf.AdvanceWidth

	if self.cacheHandler != nil {
		alpha, found := self.cacheHandler.GetMask(index)
		if found { return face.RecordFromMask(index, advance, alpha), nil }
	}

	self.outline = appendOutline(self.outline[:0], &self.glyphBuf)
	alpha, err := mask.Rasterize(self.outline, self.rasterizer, fixed.Point26_6{})
	if err != nil { return glyph.Record{}, fmt.Errorf("ttface: glyph %d rasterization: %w", index, err) }
	if self.cacheHandler != nil {
		self.cacheHandler.PassMask(index, alpha)
	}
	return face.RecordFromMask(index, advance, alpha), nil
}

// Satisfies the [glyph.Provider] interface.
func (self *Face) GlyphBounds(index glyph.Index) (glyph.Bounds, error) {
	err := self.load(index)
	if err != nil { return glyph.Bounds{}, err }
	bounds := self.glyphBuf.Bounds
	return glyph.Bounds{
		XMin: bounds.Min.X.Floor(),
		YMin: bounds.Min.Y.Floor(),
		XMax: bounds.Max.X.Ceil(),
		YMax: bounds.Max.Y.Ceil(),
	}, nil
}

func (self *Face) load(index glyph.Index) error {
	if int(index) >= self.numGlyphs {
		return fmt.Errorf("ttface: %w (%d)", glyph.ErrUnknownGlyph, index)
	}
	err := self.glyphBuf.Load(self.font, self.scale, truetype.Index(index), xfont.HintingNone)
	if err != nil { return fmt.Errorf("ttface: glyph %d: %w", index, err) }
	return nil
}
