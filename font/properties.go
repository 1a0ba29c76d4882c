package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt buffers can't be used concurrently
var sfntBuffer sfnt.Buffer
var sfntBufferMutex sync.Mutex

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	sfntBufferMutex.Lock()
	str, err := font.Name(&sfntBuffer, property)
	sfntBufferMutex.Unlock()
	if err == sfnt.ErrNotFound || (err == nil && str == "") {
		return "", ErrNotFound
	}
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases,
// this will be one of Regular, Italic, Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the unique identifier of the given font.
func GetIdentifier(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDUniqueIdentifier)
}

// Returns the runes in the given text that the font maps to the
// notdef glyph. Repeated runes are only reported once, in order
// of first appearance.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	sfntBufferMutex.Lock()
	defer sfntBufferMutex.Unlock()

	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if _, done := seen[codePoint]; done { continue }
		seen[codePoint] = struct{}{}
		index, err := font.GlyphIndex(&sfntBuffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
