package output

import (
	"strings"

	"github.com/dl/rxd/internal/dump"
)

const columnSep = "  "

// TextFormatter formats rows as "<offset>  <hex>  <text>".
type TextFormatter struct {
	cfg          dump.Config
	offsetDigits int
}

// NewTextFormatter creates a TextFormatter. offsetDigits fixes the width of
// the offset column for the whole run; see dump.OffsetDigits.
func NewTextFormatter(cfg dump.Config, offsetDigits int) *TextFormatter {
	return &TextFormatter{
		cfg:          cfg,
		offsetDigits: max(offsetDigits, 1),
	}
}

func (f *TextFormatter) Format(buf []byte, line dump.Line) []byte {
	buf = appendOffset(buf, line.Offset, f.offsetDigits)
	buf = append(buf, columnSep...)
	buf = append(buf, line.Hex...)
	buf = append(buf, columnSep...)
	buf = append(buf, line.Text...)
	buf = append(buf, '\n')
	return buf
}

// Header appends the column index row followed by a rule, both aligned with
// the data rows.
func (f *TextFormatter) Header(buf []byte) []byte {
	hexWidth := f.cfg.HexWidth()

	buf = append(buf, strings.Repeat(" ", f.offsetDigits)...)
	buf = append(buf, columnSep...)
	buf = append(buf, f.cfg.Header()...)
	buf = append(buf, '\n')

	buf = append(buf, strings.Repeat("-", f.offsetDigits)...)
	buf = append(buf, columnSep...)
	buf = append(buf, strings.Repeat("-", hexWidth)...)
	buf = append(buf, columnSep...)
	buf = append(buf, strings.Repeat("-", f.cfg.LineWidth)...)
	buf = append(buf, '\n')
	return buf
}

// appendOffset writes off as lowercase hex, zero-padded to digits.
func appendOffset(buf []byte, off int64, digits int) []byte {
	const hexDigits = "0123456789abcdef"
	var tmp [16]byte
	i := len(tmp)
	for v := uint64(off); v > 0; v >>= 4 {
		i--
		tmp[i] = hexDigits[v&0x0f]
	}
	for n := len(tmp) - i; n < digits; n++ {
		buf = append(buf, '0')
	}
	return append(buf, tmp[i:]...)
}

// Ensure TextFormatter implements Formatter and HeaderFormatter.
var (
	_ Formatter       = (*TextFormatter)(nil)
	_ HeaderFormatter = (*TextFormatter)(nil)
)
