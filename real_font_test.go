package glyphr

import "bytes"
import "testing"

import "github.com/tinne26/glyphr/glyph"

func TestHelloWorldResolution(t *testing.T) {
	provider := newGoRegular(t, 72)
	renderer := NewRenderer(provider)
	glyphs, err := renderer.Resolve(Text("Hello World"))
	if err != nil { t.Fatal(err) }
	expected := []glyph.Index{43, 72, 79, 79, 82, 3, 58, 82, 85, 79, 71}
	if !equalIndices(glyphs, expected) { t.Fatalf("expected %v, got %v", expected, glyphs) }

	for i, codePoint := range "Hello World" {
		if glyphs[i] == 0 { t.Fatalf("unexpected notdef for %q", codePoint) }
		if glyphs[i] != provider.GlyphIndex(codePoint) { t.Fatalf("mismatch for %q", codePoint) }
	}
	if glyphs[2] != glyphs[3] || glyphs[3] != glyphs[9] { t.Fatal("expected repeated 'l' indices") }
	if glyphs[4] != glyphs[7] { t.Fatal("expected repeated 'o' indices") }
	if glyphs[0] == glyphs[6] { t.Fatal("expected 'H' and 'W' to differ") }

	again, err := renderer.Resolve(Text("Hello World"))
	if err != nil { t.Fatal(err) }
	if !equalIndices(glyphs, again) { t.Fatal("resolution must be deterministic") }
}

func TestRenderDeterminism(t *testing.T) {
	renderer := NewRenderer(newGoRegular(t, 72))
	renderer.SetCanvasSize(280, 0)

	err := renderer.RenderText("hello world")
	if err != nil { t.Fatal(err) }
	first := renderer.Image()
	var firstPNG bytes.Buffer
	err = renderer.WritePNG(&firstPNG)
	if err != nil { t.Fatal(err) }

	err = renderer.RenderText("hello world")
	if err != nil { t.Fatal(err) }
	var secondPNG bytes.Buffer
	err = renderer.WritePNG(&secondPNG)
	if err != nil { t.Fatal(err) }
	if first == renderer.Image() { t.Fatal("expected a fresh canvas per render") }
	if !first.Equal(renderer.Image()) { t.Fatal("renders must be identical") }
	if !bytes.Equal(firstPNG.Bytes(), secondPNG.Bytes()) { t.Fatal("encoded renders must be identical") }

	// same output from the equivalent glyph list
	glyphs, err := renderer.Resolve(Text("hello world"))
	if err != nil { t.Fatal(err) }
	err = renderer.RenderGlyphs(glyphs...)
	if err != nil { t.Fatal(err) }
	if !first.Equal(renderer.Image()) { t.Fatal("text and glyph renders must match") }

	if first.Width() != 280 || first.Height() <= 0 { t.Fatalf("unexpected size %v", first.Bounds()) }
	if countColor(first, white) == first.Width()*first.Height() { t.Fatal("expected some ink") }
}

func TestRealFontTruncation(t *testing.T) {
	renderer := NewRenderer(newGoRegular(t, 36))
	renderer.SetCanvasSize(100, 0)
	err := renderer.RenderText("Eble ĉiu kvazaŭ-deca fuŝĥoraĵo ĝojigos homtipon.")
	if err != nil { t.Fatal(err) }
	if renderer.Image().Width() != 100 { t.Fatal("unexpected width") }

	renderer.SetCanvasSize(740, 0)
	renderer.SetFixedAdvance(70)
	err = renderer.RenderText("hello world")
	if err != nil { t.Fatal(err) }

	// with a fixed advance, the eleventh glyph starts past the edge
	img := renderer.Image()
	for y := 0; y < img.Height(); y++ {
		for x := 730; x < 740; x++ {
			if img.RGBAAt(x, y) != white { t.Fatalf("unexpected ink at (%d, %d)", x, y) }
		}
	}
}

func TestRealFontMatrix(t *testing.T) {
	renderer := NewRenderer(newGoRegular(t, 48))
	renderer.SetGrid(GridSpec{ HorzAdvance: 110, VertAdvance: 110, ItemsPerLine: 7 })
	glyphs := []glyph.Index{10, 11, 12, 13, 14, 15, 16, 17}
	err := renderer.RenderMatrix(glyphs)
	if err != nil { t.Fatal(err) }
	if renderer.Image().Width() != 770 || renderer.Image().Height() != 220 {
		t.Fatalf("expected 770x220, got %v", renderer.Image().Bounds())
	}
	if renderer.Lines() != 2 { t.Fatalf("expected 2 lines, got %d", renderer.Lines()) }

	renderer.SetGrid(GridSpec{ HorzAdvance: 110, VertAdvance: 110, ItemsPerLine: 4 })
	err = renderer.RenderMatrix(glyphs)
	if err != nil { t.Fatal(err) }
	if renderer.Image().Width() != 440 || renderer.Lines() != 2 { t.Fatal("unexpected 4 per line matrix") }
}

func TestRealFontDescenders(t *testing.T) {
	renderer := NewRenderer(newLiberationSerif(t, 40))
	glyphs, err := renderer.Resolve(Text("gy"))
	if err != nil { t.Fatal(err) }
	extent, err := renderer.Extent(glyphs)
	if err != nil { t.Fatal(err) }
	if extent.Baseline <= 0 { t.Fatal("expected descenders below the baseline") }

	renderer.SetCanvasSize(120, 0)
	err = renderer.RenderText("gy")
	if err != nil { t.Fatal(err) }
	if renderer.Image().Height() != extent.Height { t.Fatal("expected computed height") }

	// the descender must reach the bottom rows
	bottom := renderer.Image().Height() - 1
	if len(columnsWith(renderer.Image(), bottom, white)) == renderer.Image().Width() {
		t.Fatal("expected ink on the bottom row")
	}
}
