package glyphr

import "strconv"
import "strings"

// Parses a "WIDTHxHEIGHT" string like "280x120". A lone "WIDTH"
// is accepted too, with a zero height. Negative values are invalid.
func ParseSize(size string) (width, height int, err error) {
	widthStr, heightStr, hasHeight := strings.Cut(strings.TrimSpace(size), "x")
	width, err = strconv.Atoi(widthStr)
	if err != nil || width < 0 { return 0, 0, ErrInvalidSize }
	if !hasHeight { return width, 0, nil }
	height, err = strconv.Atoi(heightStr)
	if err != nil || height < 0 { return 0, 0, ErrInvalidSize }
	return width, height, nil
}
