package dump

// Line is a single rendered row of a dump.
//
// Bytes aliases the formatter's read buffer and is only valid until the
// next row is requested; copy it to retain it.
type Line struct {
	Offset int64
	Bytes  []byte
	Hex    string
	Text   string
}

const hexDigits = "0123456789abcdef"

// appendHex renders row as grouped lowercase hex. Bytes within a group are not
// separated; a single space follows each group except the last. Positions past
// the end of a short row are filled with blanks so the column keeps the
// full-row width.
func appendHex(buf []byte, row []byte, width, group int) []byte {
	for i := 0; i < width; i++ {
		if i > 0 && i%group == 0 {
			buf = append(buf, ' ')
		}
		if i < len(row) {
			buf = append(buf, hexDigits[row[i]>>4], hexDigits[row[i]&0x0f])
		} else {
			buf = append(buf, ' ', ' ')
		}
	}
	return buf
}

// appendText renders the character sidebar, one glyph per byte, padding
// missing positions with spaces.
func appendText(buf []byte, row []byte, width int, glyphs *[256]string) []byte {
	for i := 0; i < width; i++ {
		if i < len(row) {
			buf = append(buf, glyphs[row[i]]...)
		} else {
			buf = append(buf, ' ')
		}
	}
	return buf
}

// Header renders the column index row for the hex column: each position shows
// its index within the row, grouped the same way as the data. Indexes are two
// hex digits, so rows wider than 256 bytes repeat 00..ff.
func (c Config) Header() string {
	idx := make([]byte, c.LineWidth)
	for i := range idx {
		idx[i] = byte(i & 0xff)
	}
	return string(appendHex(make([]byte, 0, c.HexWidth()), idx, c.LineWidth, c.GroupLength))
}

// OffsetDigits returns the number of hex digits needed to print every offset
// of an input of the given size, never fewer than 8. A negative size means
// the size is unknown.
func OffsetDigits(size int64) int {
	n := 0
	for v := size - 1; v > 0; v >>= 4 {
		n++
	}
	return max(8, n)
}
