package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
)

const readBufSize = 64 * 1024

// Formatter turns a byte stream into rendered dump rows.
type Formatter struct {
	cfg    Config
	glyphs *[256]string
	hex    []byte
	text   []byte
}

// New validates cfg and returns a Formatter for it.
func New(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{
		cfg:    cfg,
		glyphs: glyphTable(cfg.ShowControlChars),
		hex:    make([]byte, 0, cfg.HexWidth()),
		text:   make([]byte, 0, cfg.LineWidth*glyphLen),
	}, nil
}

// Config returns the configuration the formatter was built with.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Render renders a single row starting at offset. row must not be longer
// than the configured line width.
func (f *Formatter) Render(offset int64, row []byte) Line {
	f.hex = appendHex(f.hex[:0], row, f.cfg.LineWidth, f.cfg.GroupLength)
	f.text = appendText(f.text[:0], row, f.cfg.LineWidth, f.glyphs)
	return Line{
		Offset: offset,
		Bytes:  row,
		Hex:    string(f.hex),
		Text:   string(f.text),
	}
}

// Lines returns the rows of r in input order. The sequence ends when r is
// exhausted or LineLimit rows have been produced, whichever comes first.
// With a limit set, no byte past LineLimit*LineWidth is ever read from r.
// Stopping the range loop early stops reading. A read error is yielded once
// as the final element, after any partial row read before it.
func (f *Formatter) Lines(r io.Reader) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		src := r
		if n, ok := f.limitBytes(); ok {
			src = io.LimitReader(r, n)
		}
		br := bufio.NewReaderSize(src, max(readBufSize, f.cfg.LineWidth))
		buf := make([]byte, f.cfg.LineWidth)

		var offset int64
		for rows := 0; f.cfg.LineLimit == 0 || rows < f.cfg.LineLimit; rows++ {
			n, err := io.ReadFull(br, buf)
			if n > 0 {
				if !yield(f.Render(offset, buf[:n]), nil) {
					return
				}
				offset += int64(n)
			}
			if err == nil {
				continue
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				yield(Line{}, fmt.Errorf("read at offset %d: %w", offset, err))
			}
			return
		}
	}
}

// limitBytes returns the number of input bytes the row limit allows.
func (f *Formatter) limitBytes() (int64, bool) {
	if f.cfg.LineLimit == 0 {
		return 0, false
	}
	width := int64(f.cfg.LineWidth)
	if int64(f.cfg.LineLimit) > math.MaxInt64/width {
		return 0, false
	}
	return int64(f.cfg.LineLimit) * width, true
}
