package main

import "os"
import "strings"
import "testing"
import "path/filepath"

import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/glyphr/font"

func TestParseGlyphList(t *testing.T) {
	values, err := parseGlyphList("11, 133 140,140")
	if err != nil { t.Fatal(err) }
	if len(values) != 4 || values[0] != 11 || values[3] != 140 { t.Fatalf("unexpected values %v", values) }

	_, err = parseGlyphList("1 x 3")
	if err == nil { t.Fatal("expected error") }
	_, err = parseGlyphList("70000")
	if err == nil { t.Fatal("expected out of range error") }
}

func TestJobFromFlags(t *testing.T) {
	opts := options{ fontRef: "builtin:goregular", canvasSize: "280x0", out: "x.png", size: 72, dpi: 72, margin: 10 }
	_, err := jobFromFlags(opts)
	if err == nil { t.Fatal("expected error without text nor glyphs") }

	opts.text = "hello world"
	file, err := jobFromFlags(opts)
	if err != nil { t.Fatal(err) }
	last := file.Statements[len(file.Statements) - 1]
	if last.Text == nil || last.Text.Value != "hello world" || *last.Text.Output != "x.png" {
		t.Fatal("expected text statement last")
	}

	opts.gridSize, opts.per = "110x110", 4
	file, err = jobFromFlags(opts)
	if err != nil { t.Fatal(err) }
	last = file.Statements[len(file.Statements) - 1]
	if last.Matrix == nil || *last.Matrix.Text != "hello world" { t.Fatal("expected text matrix statement") }

	opts.glyphs = "1 2"
	_, err = jobFromFlags(opts)
	if err == nil { t.Fatal("expected mutually exclusive error") }
}

func TestReadJobEncoding(t *testing.T) {
	source := "canvas 200x0\ntext \"café\" -> \"out.png\"\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(source)
	if err != nil { t.Fatal(err) }
	path := filepath.Join(t.TempDir(), "legacy.job")
	err = os.WriteFile(path, []byte(encoded), 0o644)
	if err != nil { t.Fatal(err) }

	file, err := readJob(path, "windows-1252")
	if err != nil { t.Fatal(err) }
	if file.Statements[1].Text.Value != "café" { t.Fatalf("unexpected decoded text %q", file.Statements[1].Text.Value) }

	_, err = readJob(path, "klingon")
	if err == nil || !strings.Contains(err.Error(), "klingon") { t.Fatalf("expected encoding error, got %v", err) }
}

func TestListFonts(t *testing.T) {
	var out strings.Builder
	err := listFonts(&out, font.NewLibrary())
	if err != nil { t.Fatal(err) }
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 { t.Fatalf("expected the two builtin fonts, got %q", out.String()) }
	if !strings.HasPrefix(lines[0], "builtin:goregular") || !strings.Contains(lines[0], "Go / Regular") {
		t.Fatalf("unexpected listing line %q", lines[0])
	}
}
