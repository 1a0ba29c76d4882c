package job

import "os"
import "fmt"
import "errors"
import "path/filepath"
import "image/color"

import "golang.org/x/image/colornames"

import "github.com/tinne26/glyphr"
import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/canvas"
import "github.com/tinne26/glyphr/font"
import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/sizer"

// Font settings used until a font statement says otherwise.
const (
	DefaultFont = font.BuiltinPrefix + "goregular"
	DefaultSize = 36.0
	DefaultDPI  = 72.0
)

var ErrUnknownColor = errors.New("job: unknown color name")
var ErrGlyphOutOfRange = errors.New("job: glyph index out of range 0-65535")
var ErrInvalidThreshold = errors.New("job: threshold must be between 0 and 255")

// A Runner executes parsed job files. The zero value is valid: it
// renders with the default font, resolves relative paths against the
// working directory and writes PNG files.
//
// Runners keep their renderer and fonts between runs, so the same
// runner can execute a job repeatedly (e.g. in watch mode). Runners
// can't be used concurrently.
type Runner struct {
	Dir string     // base directory for relative font and output paths
	Backend string // default provider backend, see [OpenProvider]()
	Scale int      // integer upscaling applied to written images
	Threshold int  // default coverage threshold, 0 keeps antialiasing

	Renderer *glyphr.Renderer
	Library *font.Library
	Cache *cache.DefaultCache

	// Called for each image output. When nil, the image is
	// written as a PNG file at the given path.
	OnOutput func(path string, img *canvas.Canvas) error

	source *font.Source
	written int
}

// Executes all the statements of the job in order, stopping at the
// first error. Errors include the position of the failing statement.
func (self *Runner) Run(file *File) error {
	self.init()
	self.written = 0
	for _, stmt := range file.Statements {
		err := self.exec(stmt)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", stmt.Pos, stmt.Kind(), err)
		}
	}
	glyphr.Logger().Info("job completed", "statements", len(file.Statements), "outputs", self.written)
	return nil
}

// Returns the number of images written by the last run.
func (self *Runner) Written() int { return self.written }

func (self *Runner) init() {
	if self.Library == nil { self.Library = font.NewLibrary() }
	if self.Renderer == nil { self.Renderer = glyphr.NewRenderer(nil) }
}

func (self *Runner) exec(stmt *Statement) error {
	switch {
	case stmt.Font != nil:
		return self.execFont(stmt.Font)
	case stmt.Canvas != nil:
		width, height, err := glyphr.ParseSize(stmt.Canvas.Size)
		if err != nil { return err }
		self.Renderer.SetCanvasSize(width, height)
	case stmt.Margin != nil:
		self.Renderer.SetLeftMargin(stmt.Margin.Value)
	case stmt.Advance != nil:
		self.Renderer.SetFixedAdvance(stmt.Advance.Value)
	case stmt.Padding != nil:
		self.Renderer.SetSizer(sizer.PaddedSizer{ Padding: stmt.Padding.Value })
	case stmt.Grid != nil:
		return self.execGrid(stmt.Grid)
	case stmt.Colors != nil:
		return self.execColors(stmt.Colors)
	case stmt.Text != nil:
		err := self.ensureFont()
		if err != nil { return err }
		self.reportMissing(stmt.Text.Value)
		err = self.Renderer.RenderText(stmt.Text.Value)
		if err != nil { return err }
		return self.output(stmt.Text.Output)
	case stmt.Glyphs != nil:
		err := self.ensureFont()
		if err != nil { return err }
		glyphs, err := toIndices(stmt.Glyphs.Values)
		if err != nil { return err }
		err = self.Renderer.RenderGlyphs(glyphs...)
		if err != nil { return err }
		return self.output(stmt.Glyphs.Output)
	case stmt.Matrix != nil:
		return self.execMatrix(stmt.Matrix)
	case stmt.Crop != nil:
		crop := stmt.Crop
		return self.Renderer.Crop(crop.X, crop.Y, crop.Width, crop.Height)
	case stmt.Write != nil:
		return self.output(&stmt.Write.Output)
	default:
		return errors.New("empty statement")
	}
	return nil
}

func (self *Runner) execFont(stmt *FontStmt) error {
	size, dpi, backend, threshold := DefaultSize, DefaultDPI, self.Backend, self.Threshold
	if stmt.Size != nil { size = *stmt.Size }
	if stmt.DPI  != nil { dpi  = *stmt.DPI  }
	if stmt.Backend != nil { backend = *stmt.Backend }
	if stmt.Threshold != nil { threshold = *stmt.Threshold }
	return self.setFont(stmt.Ref, size, dpi, backend, threshold)
}

func (self *Runner) setFont(ref string, size, dpi float64, backend string, threshold int) error {
	rasterizer, err := newRasterizer(threshold)
	if err != nil { return err }
	source, err := self.Library.Open(ref, self.Dir)
	if err != nil { return err }
	provider, err := OpenProvider(backend, source, size, dpi, rasterizer, self.Cache)
	if err != nil { return err }
	self.source = source
	self.Renderer.SetProvider(provider)
	glyphr.Logger().Debug("font set", "name", source.Name, "size", size, "dpi", dpi, "backend", backend, "threshold", threshold)
	return nil
}

func (self *Runner) ensureFont() error {
	if self.Renderer.GetProvider() != nil { return nil }
	return self.setFont(DefaultFont, DefaultSize, DefaultDPI, self.Backend, self.Threshold)
}

func (self *Runner) execGrid(stmt *GridStmt) error {
	horz, vert, err := glyphr.ParseSize(stmt.Size)
	if err != nil { return err }
	self.Renderer.SetGrid(glyphr.GridSpec{ HorzAdvance: horz, VertAdvance: vert, ItemsPerLine: stmt.Per })
	self.Renderer.SetTopMargin(-1)
	if stmt.Top != nil { self.Renderer.SetTopMargin(*stmt.Top) }
	self.Renderer.SetGridlineOffset(-1)
	if stmt.Offset != nil { self.Renderer.SetGridlineOffset(*stmt.Offset) }
	if stmt.Lines != nil { self.Renderer.SetGridlines(*stmt.Lines == "on") }
	return nil
}

func (self *Runner) execColors(stmt *ColorsStmt) error {
	ink, background := self.Renderer.GetColors()
	var err error
	if stmt.Ink != nil {
		ink, err = lookupColor(*stmt.Ink)
		if err != nil { return err }
	}
	if stmt.Background != nil {
		background, err = lookupColor(*stmt.Background)
		if err != nil { return err }
	}
	if stmt.Grid != nil {
		gridColor, err := lookupColor(*stmt.Grid)
		if err != nil { return err }
		self.Renderer.SetGridColor(gridColor)
	}
	self.Renderer.SetColors(ink, background)
	return nil
}

func (self *Runner) execMatrix(stmt *MatrixStmt) error {
	err := self.ensureFont()
	if err != nil { return err }

	glyphs, err := toIndices(stmt.Values)
	if err != nil { return err }
	if stmt.Text != nil {
		self.reportMissing(*stmt.Text)
		glyphs, err = self.Renderer.Resolve(glyphr.Text(*stmt.Text))
		if err != nil { return err }
	}
	err = self.Renderer.RenderMatrix(glyphs)
	if err != nil { return err }
	glyphr.Logger().Debug("matrix rendered", "glyphs", len(glyphs), "lines", self.Renderer.Lines())
	return self.output(stmt.Output)
}

func (self *Runner) output(path *string) error {
	if path == nil { return nil }
	img := self.Renderer.Image()
	if img == nil { return glyphr.ErrNoImage }
	if self.Scale > 1 { img = img.Scale(self.Scale) }

	target := *path
	if !filepath.IsAbs(target) && self.Dir != "" {
		target = filepath.Join(self.Dir, target)
	}

	var err error
	if self.OnOutput != nil {
		err = self.OnOutput(target, img)
	} else {
		err = writePNG(target, img)
	}
	if err != nil { return err }
	self.written += 1
	glyphr.Logger().Info("image written", "path", target, "width", img.Width(), "height", img.Height())
	return nil
}

func (self *Runner) reportMissing(text string) {
	if self.source == nil { return }
	missing, err := font.GetMissingRunes(self.source.Font, text)
	if err != nil || len(missing) == 0 { return }
	glyphr.Logger().Warn("runes missing from font", "font", self.source.Name, "runes", string(missing))
}

// ---- helpers ----

func writePNG(path string, img *canvas.Canvas) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil { return err }
	file, err := os.Create(path)
	if err != nil { return err }
	err = img.EncodePNG(file)
	closeErr := file.Close()
	if err != nil { return err }
	return closeErr
}

func newRasterizer(threshold int) (mask.Rasterizer, error) {
	if threshold == 0 { return nil, nil }
	if threshold < 0 || threshold > 255 { return nil, ErrInvalidThreshold }
	return &mask.ThresholdRasterizer{ Threshold: uint8(threshold) }, nil
}

func lookupColor(name string) (color.Color, error) {
	rgba, found := colornames.Map[name]
	if !found { return nil, fmt.Errorf("%w '%s'", ErrUnknownColor, name) }
	return rgba, nil
}

func toIndices(values []int) ([]glyph.Index, error) {
	glyphs := make([]glyph.Index, len(values))
	for i, value := range values {
		if value < 0 || value > 0xFFFF {
			return nil, fmt.Errorf("%w (%d)", ErrGlyphOutOfRange, value)
		}
		glyphs[i] = glyph.Index(value)
	}
	return glyphs, nil
}
