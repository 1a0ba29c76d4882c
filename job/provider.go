package job

import "fmt"
import "errors"

import "github.com/tinne26/glyphr/cache"
import "github.com/tinne26/glyphr/face"
import "github.com/tinne26/glyphr/font"
import "github.com/tinne26/glyphr/glyph"
import "github.com/tinne26/glyphr/mask"
import "github.com/tinne26/glyphr/ttface"

// Provider backends.
const (
	BackendSfnt     = "sfnt"
	BackendTrueType = "truetype"
)

var ErrUnknownBackend = errors.New("job: unknown provider backend")
var ErrNoFontData = errors.New("job: font has no raw data for the truetype backend")

// Creates a glyph provider for the given font source. An empty backend
// selects [BackendSfnt]. The glyph cache is optional, and a nil
// rasterizer keeps the provider's default one.
func OpenProvider(backend string, source *font.Source, size, dpi float64, rasterizer mask.Rasterizer, glyphCache *cache.DefaultCache) (glyph.Provider, error) {
	switch backend {
	case "", BackendSfnt:
		provider, err := face.New(source.Font, size, dpi)
		if err != nil { return nil, err }
		if rasterizer != nil { provider.SetRasterizer(rasterizer) }
		provider.SetCache(glyphCache)
		return provider, nil
	case BackendTrueType:
		if source.Data == nil { return nil, ErrNoFontData }
		provider, err := ttface.New(source.Data, size, dpi)
		if err != nil { return nil, err }
		if rasterizer != nil { provider.SetRasterizer(rasterizer) }
		provider.SetCache(glyphCache)
		return provider, nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownBackend, backend)
	}
}
