package glyphr

import "errors"

var ErrNoProvider    = errors.New("glyphr: no glyph provider set")
var ErrNoCanvasWidth = errors.New("glyphr: canvas width not set")
var ErrInvalidGrid   = errors.New("glyphr: grid advances and items per line must be positive")
var ErrNoImage       = errors.New("glyphr: nothing rendered yet")
var ErrInvalidSize   = errors.New("glyphr: invalid size, expected WIDTHxHEIGHT")
