package input

import (
	"io"
	"os"
)

// NewStdinSource returns a Source reading from stdin. Closing it leaves
// stdin open.
func NewStdinSource() *Source {
	return newStreamSource("<stdin>", os.Stdin)
}

// newStreamSource wraps a reader of unknown length that the caller owns.
func newStreamSource(name string, r io.Reader) *Source {
	return &Source{
		Name:   name,
		Size:   -1,
		r:      r,
		closer: noopCloser,
	}
}
