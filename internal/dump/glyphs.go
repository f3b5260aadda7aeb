package dump

import "unicode/utf8"

// controlPictureBase is U+2400 SYMBOL FOR NULL; C0 code b maps to base+b.
const controlPictureBase = 0x2400

var (
	plainGlyphs   [256]string
	controlGlyphs [256]string
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b >= 0x20 && b < 0x7f:
			plainGlyphs[i] = string(rune(b))
			controlGlyphs[i] = plainGlyphs[i]
		case b < 0x20:
			plainGlyphs[i] = "."
			controlGlyphs[i] = string(rune(controlPictureBase + int(b)))
		default:
			plainGlyphs[i] = "."
			controlGlyphs[i] = "."
		}
	}
}

// glyphTable returns the sidebar lookup table for the given mode.
func glyphTable(showControl bool) *[256]string {
	if showControl {
		return &controlGlyphs
	}
	return &plainGlyphs
}

// Glyph returns the sidebar rendering of a single byte.
func Glyph(b byte, showControl bool) string {
	return glyphTable(showControl)[b]
}

// glyphLen is the largest encoded size of any glyph, used to size buffers.
var glyphLen = utf8.RuneLen(controlPictureBase + 0x1f)
