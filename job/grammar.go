package job

import "io"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

var (
	jobLexer = lexer.MustSimple([]lexer.SimpleRule{
		{ Name: "Comment",    Pattern: `#[^\n]*` },
		{ Name: "Whitespace", Pattern: `[ \t\r]+` },
		{ Name: "Newline",    Pattern: `\n+` },
		{ Name: "Size",       Pattern: `\d+x\d+` },
		{ Name: "Float",      Pattern: `\d+\.\d+` },
		{ Name: "Arrow",      Pattern: `->` },
		{ Name: "Int",        Pattern: `-?\d+` },
		{ Name: "String",     Pattern: `"(?:\\.|[^"\\])*"` },
		{ Name: "Ident",      Pattern: `[A-Za-z_][A-Za-z0-9_-]*` },
	})

	jobParser = participle.MustBuild[File](
		participle.Lexer(jobLexer),
		participle.Elide("Whitespace", "Newline", "Comment"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// A parsed job file: a list of statements executed in order
// against a single renderer.
type File struct {
	Pos        lexer.Position `parser:""`
	Statements []*Statement `parser:"@@*"`
}

// Exactly one of the fields is set.
type Statement struct {
	Pos     lexer.Position `parser:""`
	Font    *FontStmt    `parser:"  @@"`
	Canvas  *CanvasStmt  `parser:"| @@"`
	Margin  *MarginStmt  `parser:"| @@"`
	Advance *AdvanceStmt `parser:"| @@"`
	Padding *PaddingStmt `parser:"| @@"`
	Grid    *GridStmt    `parser:"| @@"`
	Colors  *ColorsStmt  `parser:"| @@"`
	Text    *TextStmt    `parser:"| @@"`
	Glyphs  *GlyphsStmt  `parser:"| @@"`
	Matrix  *MatrixStmt  `parser:"| @@"`
	Crop    *CropStmt    `parser:"| @@"`
	Write   *WriteStmt   `parser:"| @@"`
}

// font "path/to/font.ttf" [size N] [dpi N] [backend sfnt|truetype] [threshold N]
type FontStmt struct {
	Ref       string   `parser:"'font' @String"`
	Size      *float64 `parser:"( 'size' @(Float | Int)"`
	DPI       *float64 `parser:"| 'dpi' @(Float | Int)"`
	Backend   *string  `parser:"| 'backend' @Ident"`
	Threshold *int     `parser:"| 'threshold' @Int )*"`
}

// canvas WIDTHxHEIGHT, or canvas WIDTH
type CanvasStmt struct {
	Size string `parser:"'canvas' @(Size | Int)"`
}

type MarginStmt struct {
	Value int `parser:"'margin' @Int"`
}

// advance 0 restores the natural glyph advances
type AdvanceStmt struct {
	Value int `parser:"'advance' @Int"`
}

// padding N adds N pixels to each natural advance
type PaddingStmt struct {
	Value int `parser:"'padding' @Int"`
}

// grid HORZxVERT per N [top N] [offset N] [lines on|off]
type GridStmt struct {
	Size   string  `parser:"'grid' @Size"`
	Per    int     `parser:"'per' @Int"`
	Top    *int    `parser:"( 'top' @Int"`
	Offset *int    `parser:"| 'offset' @Int"`
	Lines  *string `parser:"| 'lines' @('on' | 'off') )*"`
}

// colors [ink NAME] [background NAME] [grid NAME], with
// names from the SVG 1.1 specification
type ColorsStmt struct {
	Ink        *string `parser:"'colors' ( 'ink' @Ident"`
	Background *string `parser:"| 'background' @Ident"`
	Grid       *string `parser:"| 'grid' @Ident )+"`
}

type TextStmt struct {
	Value  string  `parser:"'text' @String"`
	Output *string `parser:"( Arrow @String )?"`
}

type GlyphsStmt struct {
	Values []int   `parser:"'glyphs' @Int+"`
	Output *string `parser:"( Arrow @String )?"`
}

// matrix accepts either glyph indices or a text to resolve
type MatrixStmt struct {
	Text   *string `parser:"'matrix' ( @String"`
	Values []int   `parser:"| @Int* )"`
	Output *string `parser:"( Arrow @String )?"`
}

type CropStmt struct {
	X      int `parser:"'crop' @Int"`
	Y      int `parser:"@Int"`
	Width  int `parser:"@Int"`
	Height int `parser:"@Int"`
}

type WriteStmt struct {
	Output string `parser:"'write' @String"`
}

// Parses a job from the given reader. The filename is only
// used for error positions.
func Parse(filename string, r io.Reader) (*File, error) {
	return jobParser.Parse(filename, r)
}

// Parses a job from the given string.
func ParseString(filename string, input string) (*File, error) {
	return jobParser.ParseString(filename, input)
}

// Returns the statement keyword, mostly for logging.
func (self *Statement) Kind() string {
	switch {
	case self == nil:
		return "unknown"
	case self.Font != nil:
		return "font"
	case self.Canvas != nil:
		return "canvas"
	case self.Margin != nil:
		return "margin"
	case self.Advance != nil:
		return "advance"
	case self.Padding != nil:
		return "padding"
	case self.Grid != nil:
		return "grid"
	case self.Colors != nil:
		return "colors"
	case self.Text != nil:
		return "text"
	case self.Glyphs != nil:
		return "glyphs"
	case self.Matrix != nil:
		return "matrix"
	case self.Crop != nil:
		return "crop"
	case self.Write != nil:
		return "write"
	default:
		return "unknown"
	}
}
