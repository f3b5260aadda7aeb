package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Source is an open, sequentially read input.
type Source struct {
	Name string
	// Size is the file size at open time, or -1 when it cannot be known
	// up front (pipes, terminals, stdin).
	Size int64

	r      io.Reader
	closer func() error
}

// noopCloser is a package-level no-op closer for sources we do not own.
func noopCloser() error { return nil }

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close releases the underlying file. It is safe to call more than once.
func (s *Source) Close() error {
	c := s.closer
	s.closer = noopCloser
	return c()
}

// Open opens path for a single sequential pass. The path "-" selects stdin.
func Open(path string) (*Source, error) {
	if path == StdinPath {
		return NewStdinSource(), nil
	}

	fd, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		unix.Close(fd)
		return nil, fmt.Errorf("open %s: %w", path, unix.EISDIR)
	}

	size := int64(-1)
	if stat.Mode&unix.S_IFMT == unix.S_IFREG {
		size = stat.Size
		// Hint kernel: sequential read pattern
		unix.Fadvise(fd, 0, 0, unix.FADV_SEQUENTIAL)
	}

	f := os.NewFile(uintptr(fd), path)
	return &Source{
		Name:   path,
		Size:   size,
		r:      f,
		closer: f.Close,
	}, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
