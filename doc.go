// glyphr renders glyph specimens: text or explicit glyph index lists
// drawn either as a single horizontal strip or as a grid of fixed size
// cells with gridlines.
//
// Basic usage:
//
//	provider, err := face.NewFromBytes(goregular.TTF, 72, 72)
//	if err != nil { ... }
//	renderer := glyphr.NewRenderer(provider)
//	renderer.SetCanvasSize(280, 0)
//	err = renderer.RenderText("hello world")
//	if err != nil { ... }
//	err = renderer.WritePNG(file)
//
// Matrix renders use a [GridSpec] instead of a canvas size:
//
//	renderer.SetGrid(glyphr.GridSpec{ HorzAdvance: 110, VertAdvance: 110, ItemsPerLine: 7 })
//	err = renderer.RenderMatrix(indices)
//	fmt.Println(renderer.Lines())
//
// The subpackages contain the glyph providers (face, ttface), the raster
// canvas (canvas), the job language used by the command line tool (job)
// and other supporting types.
package glyphr
