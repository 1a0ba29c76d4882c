package glyphr

import "unicode/utf8"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/glyphr/glyph"

// A Composition is the input of a render: either a text or an
// explicit sequence of glyph indices. The order is always kept
// as given; there's no shaping of any kind.
type Composition struct {
	text string
	glyphs []glyph.Index
	isText bool
}

// Creates a text composition. Each code point maps to one glyph.
func Text(text string) Composition {
	return Composition{ text: text, isText: true }
}

// Creates a composition from explicit glyph indices.
func Glyphs(glyphs ...glyph.Index) Composition {
	return Composition{ glyphs: glyphs }
}

// Returns whether the composition was created with [Text]().
func (self Composition) IsText() bool { return self.isText }

// Returns whether the composition has no glyphs to render.
func (self Composition) Empty() bool {
	if self.isText { return len(self.text) == 0 }
	return len(self.glyphs) == 0
}

// Turns the composition into glyph indices. Text compositions are
// mapped code point by code point through the provider, so repeated
// characters produce repeated indices. Glyph compositions are copied
// unchanged.
func (self *Renderer) Resolve(composition Composition) ([]glyph.Index, error) {
	if !composition.isText {
		return append([]glyph.Index(nil), composition.glyphs...), nil
	}
	if self.provider == nil { return nil, ErrNoProvider }

	text := composition.text
	if self.internalFlags & internalFlagNormalize != 0 {
		text = norm.NFC.String(text)
	}
	glyphs := make([]glyph.Index, 0, utf8.RuneCountInString(text))
	for _, codePoint := range text {
		glyphs = append(glyphs, self.provider.GlyphIndex(codePoint))
	}
	return glyphs, nil
}
