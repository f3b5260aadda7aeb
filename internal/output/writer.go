package output

import (
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/dl/rxd/internal/dump"
)

// DefaultBatchSize is the amount of formatted output buffered before a write.
const DefaultBatchSize = 64 * 1024

// Writer writes formatted output to a file descriptor, using writev for batching.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewFdWriter(int(os.Stdout.Fd()))
}

// NewFdWriter creates a Writer for an already-open file descriptor.
func NewFdWriter(fd int) *Writer {
	return &Writer{fd: fd}
}

// Write writes data to the descriptor, retrying short and interrupted writes.
func (w *Writer) Write(data []byte) (int, error) {
	total := 0
	for len(data) > 0 {
		iovs := [][]byte{data}
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, err
		}
		total += n
		data = data[n:]
	}
	return total, nil
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}

// BatchWriter formats rows into a buffer and hands it to the underlying
// writer once it reaches the batch size. A batch size of 0 writes every row
// as soon as it is formatted.
type BatchWriter struct {
	w         io.Writer
	formatter Formatter
	buf       []byte
	batchSize int
	written   int64
}

// NewBatchWriter creates a BatchWriter.
func NewBatchWriter(w io.Writer, f Formatter, batchSize int) *BatchWriter {
	return &BatchWriter{
		w:         w,
		formatter: f,
		buf:       make([]byte, 0, max(batchSize, 256)),
		batchSize: batchSize,
	}
}

// WriteHeader writes the formatter's column header, if it has one.
func (bw *BatchWriter) WriteHeader() error {
	hf, ok := bw.formatter.(HeaderFormatter)
	if !ok {
		return nil
	}
	bw.buf = hf.Header(bw.buf)
	return bw.maybeFlush()
}

// WriteLine formats and queues a single row.
func (bw *BatchWriter) WriteLine(line dump.Line) error {
	bw.buf = bw.formatter.Format(bw.buf, line)
	return bw.maybeFlush()
}

// Flush writes any buffered output.
func (bw *BatchWriter) Flush() error {
	if len(bw.buf) == 0 {
		return nil
	}
	n, err := bw.w.Write(bw.buf)
	bw.written += int64(n)
	bw.buf = bw.buf[:0]
	return err
}

// Written returns the number of bytes handed to the underlying writer.
func (bw *BatchWriter) Written() int64 {
	return bw.written
}

func (bw *BatchWriter) maybeFlush() error {
	if len(bw.buf) < bw.batchSize {
		return nil
	}
	return bw.Flush()
}
