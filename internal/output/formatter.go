package output

import "github.com/dl/rxd/internal/dump"

// Formatter formats a dump row into bytes for output.
// buf is a reusable buffer: implementations append to it and return the result.
// Callers can pass buf[:0] to reuse the underlying array without allocating.
type Formatter interface {
	Format(buf []byte, line dump.Line) []byte
}

// HeaderFormatter is implemented by formatters that can print a leading
// column header.
type HeaderFormatter interface {
	Header(buf []byte) []byte
}
