package main

import "os"
import "io"
import "fmt"
import "flag"
import "errors"
import "strings"
import "strconv"
import "sort"
import "log/slog"
import "path/filepath"

import "github.com/davecgh/go-spew/spew"
import "github.com/fsnotify/fsnotify"
import "golang.org/x/text/encoding/htmlindex"
import "golang.org/x/text/transform"

import "github.com/tinne26/glyphr"
import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/font"
import "github.com/tinne26/glyphr/job"

type options struct {
	fontRef, canvasSize, gridSize string
	glyphs, text, out, backend string
	size, dpi float64
	margin, advance, per int
}

func main() {
	var opts options
	flag.StringVar(&opts.fontRef, "font", job.DefaultFont, "font file path, or builtin:goregular / builtin:lbrtserif")
	flag.Float64Var(&opts.size, "size", job.DefaultSize, "font size in points")
	flag.Float64Var(&opts.dpi, "dpi", job.DefaultDPI, "resolution in dots per inch")
	flag.StringVar(&opts.canvasSize, "canvas", "280x0", "canvas size as WIDTHxHEIGHT, height 0 is computed")
	flag.IntVar(&opts.margin, "margin", glyphr.DefaultLeftMargin, "left margin in pixels")
	flag.IntVar(&opts.advance, "advance", 0, "fixed advance in pixels, 0 for natural advances")
	flag.StringVar(&opts.gridSize, "grid", "", "matrix cell size as HORZxVERT, enables matrix mode")
	flag.IntVar(&opts.per, "per", 7, "glyphs per matrix row")
	flag.StringVar(&opts.glyphs, "glyphs", "", "glyph indices separated by commas or spaces")
	flag.StringVar(&opts.text, "text", "", "text to render")
	flag.StringVar(&opts.out, "out", "glyphr.png", "output PNG path")
	flag.StringVar(&opts.backend, "backend", job.BackendSfnt, "glyph provider: sfnt or truetype")
	scale   := flag.Int("scale", 1, "integer upscaling for written images")
	thresh  := flag.Int("threshold", 0, "coverage threshold 1-255 to disable antialiasing")
	jobPath := flag.String("job", "", "job file to run instead of a single render")
	encName := flag.String("encoding", "", "job file encoding, e.g. windows-1252 (default utf-8)")
	watch   := flag.Bool("watch", false, "run the job file again whenever it changes")
	dump    := flag.Bool("dump", false, "print the parsed job and exit")
	fontDir := flag.String("fonts", "", "directory of fonts that can be referenced by name")
	list    := flag.Bool("list", false, "list the available fonts and exit")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	glyphr.SetLogger(logger)

	runner := &job.Runner{
		Backend: opts.backend,
		Scale: *scale,
		Threshold: *thresh,
		Cache: cache.NewDefaultCache(8*1024*1024),
		Library: font.NewLibrary(),
	}
	if *fontDir != "" {
		added, skipped, err := runner.Library.ParseAllFromPath(*fontDir)
		if err != nil { fatal(logger, "loading fonts failed", err) }
		logger.Debug("fonts loaded", "dir", *fontDir, "added", added, "skipped", skipped)
	}
	if *list {
		err := listFonts(os.Stdout, runner.Library)
		if err != nil { fatal(logger, "listing fonts failed", err) }
		return
	}

	var file *job.File
	var err error
	if *jobPath != "" {
		runner.Dir = filepath.Dir(*jobPath)
		file, err = readJob(*jobPath, *encName)
	} else {
		file, err = jobFromFlags(opts)
	}
	if err != nil { fatal(logger, "invalid job", err) }

	if *dump {
		config := spew.ConfigState{ Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true }
		config.Fdump(os.Stdout, file)
		return
	}

	err = runner.Run(file)
	if err != nil && !*watch { fatal(logger, "job failed", err) }
	if err != nil { logger.Error("job failed", "err", err) }

	if *watch {
		if *jobPath == "" { fatal(logger, "watch mode requires -job", errors.New("no job file")) }
		err = watchJob(logger, runner, *jobPath, *encName)
		if err != nil { fatal(logger, "watch failed", err) }
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}

// Reads and parses a job file, decoding it from the given encoding
// first when it's not empty.
func readJob(path string, encName string) (*job.File, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()

	var reader io.Reader = file
	if encName != "" {
		enc, err := htmlindex.Get(encName)
		if err != nil { return nil, fmt.Errorf("encoding '%s': %w", encName, err) }
		reader = transform.NewReader(file, enc.NewDecoder())
	}
	return job.Parse(path, reader)
}

// Builds the equivalent single render job from the command line flags.
func jobFromFlags(opts options) (*job.File, error) {
	if opts.text == "" && opts.glyphs == "" {
		return nil, errors.New("nothing to render, use -text, -glyphs or -job")
	}
	if opts.text != "" && opts.glyphs != "" {
		return nil, errors.New("-text and -glyphs are mutually exclusive")
	}
	values, err := parseGlyphList(opts.glyphs)
	if err != nil { return nil, err }

	file := &job.File{}
	add := func(stmt *job.Statement) { file.Statements = append(file.Statements, stmt) }
	add(&job.Statement{ Font: &job.FontStmt{ Ref: opts.fontRef, Size: &opts.size, DPI: &opts.dpi, Backend: &opts.backend } })
	output := &opts.out

	if opts.gridSize != "" {
		add(&job.Statement{ Grid: &job.GridStmt{ Size: opts.gridSize, Per: opts.per } })
		matrix := &job.MatrixStmt{ Values: values, Output: output }
		if opts.text != "" { matrix.Text = &opts.text }
		add(&job.Statement{ Matrix: matrix })
		return file, nil
	}

	add(&job.Statement{ Canvas: &job.CanvasStmt{ Size: opts.canvasSize } })
	add(&job.Statement{ Margin: &job.MarginStmt{ Value: opts.margin } })
	add(&job.Statement{ Advance: &job.AdvanceStmt{ Value: opts.advance } })
	if opts.text != "" {
		add(&job.Statement{ Text: &job.TextStmt{ Value: opts.text, Output: output } })
	} else {
		add(&job.Statement{ Glyphs: &job.GlyphsStmt{ Values: values, Output: output } })
	}
	return file, nil
}

// Writes one line per font: reference, family, subfamily and glyph count.
func listFonts(w io.Writer, library *font.Library) error {
	builtinNames := font.BuiltinNames()
	sources := make([]*font.Source, 0, len(builtinNames) + library.Size())
	for _, name := range builtinNames {
		source, err := font.Builtin(name)
		if err != nil { return err }
		sources = append(sources, source)
	}
	builtins := len(sources)
	err := library.Each(func(source *font.Source) error {
		sources = append(sources, source)
		return nil
	})
	if err != nil { return err }
	sort.Slice(sources[builtins : ], func(i, j int) bool {
		return sources[builtins + i].Name < sources[builtins + j].Name
	})

	for i, source := range sources {
		ref := source.Name
		if i < builtins { ref = font.BuiltinPrefix + builtinNames[i] }
		family, err := font.GetFamily(source.Font)
		if err != nil { return err }
		subfamily, err := font.GetSubfamily(source.Font)
		if err != nil { return err }
		_, err = fmt.Fprintf(w, "%-28s %s / %s (%d glyphs)\n", ref, family, subfamily, source.Font.NumGlyphs())
		if err != nil { return err }
	}
	return nil
}

func parseGlyphList(list string) ([]int, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 || value > 0xFFFF {
			return nil, fmt.Errorf("invalid glyph index '%s'", field)
		}
		values = append(values, value)
	}
	return values, nil
}

// Runs the job again each time the file is written. The directory is
// watched instead of the file, as many editors replace files on save.
func watchJob(logger *slog.Logger, runner *job.Runner, path string, encName string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil { return err }
	defer watcher.Close()
	err = watcher.Add(filepath.Dir(path))
	if err != nil { return err }

	target := filepath.Clean(path)
	logger.Info("watching job file", "path", target)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok { return nil }
			if filepath.Clean(event.Name) != target { continue }
			if event.Op & (fsnotify.Write | fsnotify.Create) == 0 { continue }

			file, err := readJob(path, encName)
			if err != nil {
				logger.Error("invalid job", "err", err)
				continue
			}
			err = runner.Run(file)
			if err != nil { logger.Error("job failed", "err", err) }
		case err, ok := <-watcher.Errors:
			if !ok { return nil }
			logger.Error("watcher error", "err", err)
		}
	}
}
