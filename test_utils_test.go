package glyphr

import "os"
import "fmt"
import "image/color"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/canvas"

var white = color.RGBA{255, 255, 255, 255}
var black = color.RGBA{0, 0, 0, 255}
var gray  = color.RGBA{128, 128, 128, 255}

// A provider with solid rectangular glyphs, for exact geometry tests.
type fakeProvider struct {
	records map[glyph.Index]glyph.Record
	runes   map[rune]glyph.Index
}

func newFakeProvider() *fakeProvider {
	provider := &fakeProvider{
		records: make(map[glyph.Index]glyph.Record),
		runes:   make(map[rune]glyph.Index),
	}
	provider.add('A', 1, 4, 5, 1, 5, 6)  // sits on the baseline
	provider.add('g', 2, 3, 5, 0, 3, 4)  // two pixel descender
	provider.add(' ', 3, 0, 0, 0, 0, 6)  // blank
	provider.add('j', 4, 4, 2, -3, 2, 2) // negative left bearing
	return provider
}

func (self *fakeProvider) add(codePoint rune, index glyph.Index, width, rows, bearingLeft, bearingTop, advance int) {
	pix := make([]byte, width*rows)
	for i := range pix { pix[i] = 255 }
	self.records[index] = glyph.Record{
		Index: index,
		Width: width,
		Rows: rows,
		BearingLeft: bearingLeft,
		BearingTop: bearingTop,
		Advance: fixed.I(advance),
		Pix: pix,
	}
	self.runes[codePoint] = index
}

func (self *fakeProvider) GlyphIndex(codePoint rune) glyph.Index {
	return self.runes[codePoint]
}

func (self *fakeProvider) RenderGlyph(index glyph.Index) (glyph.Record, error) {
	record, found := self.records[index]
	if !found { return glyph.Record{}, glyph.ErrUnknownGlyph }
	return record, nil
}

func (self *fakeProvider) GlyphBounds(index glyph.Index) (glyph.Bounds, error) {
	record, found := self.records[index]
	if !found { return glyph.Bounds{}, glyph.ErrUnknownGlyph }
	if record.Empty() { return glyph.Bounds{}, nil }
	return glyph.Bounds{
		XMin: record.BearingLeft,
		XMax: record.BearingLeft + record.Width,
		YMin: record.BearingTop - record.Rows,
		YMax: record.BearingTop,
	}, nil
}

// Returns the columns in the given row that have the given color.
func columnsWith(img *canvas.Canvas, y int, clr color.RGBA) []int {
	var columns []int
	for x := 0; x < img.Width(); x++ {
		if img.RGBAAt(x, y) == clr { columns = append(columns, x) }
	}
	return columns
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) { return false }
	for i := range a {
		if a[i] != b[i] { return false }
	}
	return true
}

func countColor(img *canvas.Canvas, clr color.RGBA) int {
	var count int
	for y := 0; y < img.Height(); y++ {
		count += len(columnsWith(img, y, clr))
	}
	return count
}

func debugExport(name string, img *canvas.Canvas) {
	file, err := os.Create(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = img.EncodePNG(file)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = file.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
