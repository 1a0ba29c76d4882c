package glyphr

import "image/color"

import "golang.org/x/image/colornames"

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/sizer"
import "github.com/tinne26/glyphr/canvas"

// Flags for optional settings. Unset settings fall back to values
// derived from the rest of the configuration.
const (
	internalFlagTopMargin      uint8 = 0b00000001
	internalFlagGridlineOffset uint8 = 0b00000010
	internalFlagNormalize      uint8 = 0b00000100
	internalFlagNoGridlines    uint8 = 0b00001000
)

// Left margin for linear renders unless configured otherwise.
const DefaultLeftMargin = 10

// This file contains the Renderer type definition and all the
// getter and setter methods. Actual operations are split in other
// files.

// The [Renderer] turns compositions into raster images, either as a
// single horizontal strip of glyphs ([Renderer.Render]()) or as a grid
// of fixed size cells with gridlines ([Renderer.RenderMatrix]()).
//
// Glyph indices, bitmaps and metrics come from a [glyph.Provider],
// typically created with the face or ttface subpackages. The renderer
// keeps its configuration and the most recently rendered image between
// calls; everything else is created fresh for each render.
//
// Renderers can't be used concurrently. Use one renderer (and one
// provider) per goroutine instead.
type Renderer struct {
	provider glyph.Provider
	sizer sizer.Sizer
	image *canvas.Canvas

	background color.Color
	ink color.Color
	gridColor color.Color

	grid GridSpec
	width int
	height int
	leftMargin int
	topMargin int
	gridlineOffset int
	lines int

	internalFlags uint8 // see internalFlag* constants
}

// Cell configuration for matrix renders. The canvas for a matrix
// render is ItemsPerLine*HorzAdvance pixels wide and one VertAdvance
// tall per row.
type GridSpec struct {
	HorzAdvance int
	VertAdvance int
	ItemsPerLine int
}

func (self GridSpec) valid() bool {
	return self.HorzAdvance > 0 && self.VertAdvance > 0 && self.ItemsPerLine > 0
}

// Creates a new renderer with black ink on a white background, gray
// gridlines and the default left margin. The provider can be nil, but
// it must be set before rendering.
func NewRenderer(provider glyph.Provider) *Renderer {
	return &Renderer{
		provider: provider,
		sizer: sizer.DefaultSizer{},
		background: colornames.White,
		ink: colornames.Black,
		gridColor: colornames.Gray,
		leftMargin: DefaultLeftMargin,
	}
}

// Sets the glyph provider.
func (self *Renderer) SetProvider(provider glyph.Provider) {
	self.provider = provider
}

// Returns the current glyph provider.
func (self *Renderer) GetProvider() glyph.Provider {
	return self.provider
}

// Sets the canvas size for linear renders. A height of zero means
// that the height will be computed from the vertical extent of the
// composition. Negative values are treated as zero.
func (self *Renderer) SetCanvasSize(width, height int) {
	self.width  = max(width, 0)
	self.height = max(height, 0)
}

// Returns the configured canvas size for linear renders.
func (self *Renderer) GetCanvasSize() (width, height int) {
	return self.width, self.height
}

// Sets the starting pen position for linear renders.
func (self *Renderer) SetLeftMargin(margin int) {
	self.leftMargin = margin
}

// Returns the starting pen position for linear renders.
func (self *Renderer) GetLeftMargin() int {
	return self.leftMargin
}

// Sets the sizer used to advance the pen in linear renders.
// Passing nil restores [sizer.DefaultSizer].
func (self *Renderer) SetSizer(glyphSizer sizer.Sizer) {
	if glyphSizer == nil { glyphSizer = sizer.DefaultSizer{} }
	self.sizer = glyphSizer
}

// Returns the current sizer.
func (self *Renderer) GetSizer() sizer.Sizer {
	return self.sizer
}

// Utility method to make linear renders advance by a constant amount
// of pixels per glyph. Values <= 0 restore the natural glyph advances.
func (self *Renderer) SetFixedAdvance(advance int) {
	if advance <= 0 {
		self.sizer = sizer.DefaultSizer{}
	} else {
		self.sizer = sizer.FixedSizer{ Advance: advance }
	}
}

// Sets the cell configuration for matrix renders.
func (self *Renderer) SetGrid(grid GridSpec) {
	self.grid = grid
}

// Returns the cell configuration for matrix renders.
func (self *Renderer) GetGrid() GridSpec {
	return self.grid
}

// Sets the baseline of the first row in matrix renders. Negative
// values restore the default, which is VertAdvance - HorzAdvance/3.
func (self *Renderer) SetTopMargin(margin int) {
	if margin < 0 {
		self.internalFlags &= ^internalFlagTopMargin
	} else {
		self.internalFlags |= internalFlagTopMargin
		self.topMargin = margin
	}
}

// Returns the baseline of the first row in matrix renders.
func (self *Renderer) GetTopMargin() int {
	if self.internalFlags & internalFlagTopMargin != 0 { return self.topMargin }
	return self.grid.VertAdvance - self.grid.HorzAdvance/3
}

// Sets the distance between the top margin and the first horizontal
// gridline in matrix renders. Negative values restore the default,
// which is HorzAdvance/3.
func (self *Renderer) SetGridlineOffset(offset int) {
	if offset < 0 {
		self.internalFlags &= ^internalFlagGridlineOffset
	} else {
		self.internalFlags |= internalFlagGridlineOffset
		self.gridlineOffset = offset
	}
}

// Returns the distance between the top margin and the first
// horizontal gridline in matrix renders.
func (self *Renderer) GetGridlineOffset() int {
	if self.internalFlags & internalFlagGridlineOffset != 0 { return self.gridlineOffset }
	return self.grid.HorzAdvance/3
}

// Enables or disables the gridline overlay for matrix renders.
// Gridlines are enabled by default.
func (self *Renderer) SetGridlines(enabled bool) {
	if enabled {
		self.internalFlags &= ^internalFlagNoGridlines
	} else {
		self.internalFlags |= internalFlagNoGridlines
	}
}

// Enables or disables NFC normalization of text compositions before
// glyph resolution. Disabled by default, so each code point in the
// text maps to exactly one glyph.
func (self *Renderer) SetNormalization(enabled bool) {
	if enabled {
		self.internalFlags |= internalFlagNormalize
	} else {
		self.internalFlags &= ^internalFlagNormalize
	}
}

// Sets the ink and background colors.
func (self *Renderer) SetColors(ink, background color.Color) {
	self.ink = ink
	self.background = background
}

// Returns the ink and background colors.
func (self *Renderer) GetColors() (ink, background color.Color) {
	return self.ink, self.background
}

// Sets the gridline color.
func (self *Renderer) SetGridColor(gridColor color.Color) {
	self.gridColor = gridColor
}

// Returns the most recently rendered image, or nil if nothing
// has been rendered yet.
func (self *Renderer) Image() *canvas.Canvas {
	return self.image
}

// Returns the number of rows that received at least one glyph in
// the last matrix render. Linear renders reset it to zero.
func (self *Renderer) Lines() int {
	return self.lines
}
