// The job subpackage implements a small language to describe batches
// of renders, used by the glyphr command line tool:
//
//	# comments start with '#'
//	font "fonts/serif.ttf" size 48 dpi 72
//	canvas 280x0        # height 0 = computed
//	margin 10
//	advance 70          # fixed advance, 0 for natural advances
//	padding 2           # extra pixels after each natural advance
//	text "hello world" -> "out/hello.png"
//	glyphs 11 133 140 -> "out/glyphs.png"
//	grid 110x110 per 4 top 80 offset 36 lines on
//	colors ink navy background white grid silver
//	matrix 10 11 12 13 14 15 16 17 -> "out/matrix.png"
//	matrix "abcdefgh"
//	crop 0 0 220 110
//	write "out/cropped.png"
//
// Statements are executed in order by a [Runner], all of them against
// the same renderer. Fonts can be file paths or built-in fonts like
// "builtin:goregular". Font statements also accept "backend truetype"
// and "threshold N" (1-255) to disable antialiasing.
package job
