package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// A parsed font alongside its name and raw data. The data is kept
// because some providers (e.g. ttface) need to parse the font on
// their own. Data may be nil for fonts that were not parsed from
// bytes by this package.
type Source struct {
	Name string
	Font *sfnt.Font
	Data []byte
}

// Parses the given font data. The bytes must not be modified
// while the font is in use.
func ParseBytes(data []byte) (*Source, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil { return nil, err }
	name, err := GetName(parsed)
	if err != nil { return nil, err }
	return &Source{ Name: name, Font: parsed, Data: data }, nil
}

// Parses the font at the given path. Supported formats are .ttf
// and .otf.
func ParsePath(path string) (*Source, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("invalid font path '%s'", path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseAndClose(file)
}

// Same as [ParsePath](), but for embedded or virtual filesystems.
func ParseFS(filesys fs.FS, path string) (*Source, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("invalid font path '%s'", path)
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseAndClose(file)
}

// ---- helpers ----

func parseAndClose(file io.ReadCloser) (*Source, error) {
	data, err := io.ReadAll(file)
	closeErr := file.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, closeErr }
	return ParseBytes(data)
}

func hasValidFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	default:
		return false
	}
}
