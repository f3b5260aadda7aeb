package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/dl/rxd/internal/dump"
	"github.com/dl/rxd/internal/input"
	"github.com/dl/rxd/internal/output"
)

// NewLogger returns the stderr logger. The level defaults to warn and can be
// raised or lowered with RXD_LOG (debug, info, warn, error).
func NewLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if env := strings.TrimSpace(os.Getenv("RXD_LOG")); env != "" {
		if l, err := log.ParseLevel(strings.ToLower(env)); err == nil {
			level = l
		}
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "rxd",
	})
}

// Run dumps the configured input to stdout. Rows already written stay
// written if the input fails part way through.
func Run(ctx context.Context, cfg Config, stdout io.Writer, logger *log.Logger) error {
	dcfg := cfg.DumpConfig()
	f, err := dump.New(dcfg)
	if err != nil {
		return err
	}

	src, err := input.Open(cfg.Path)
	if err != nil {
		return &IOError{Op: "open", Err: err}
	}
	defer src.Close()

	if src.Size >= 0 {
		logger.Debug("opened input", "path", src.Name, "size", humanize.IBytes(uint64(src.Size)))
	} else {
		logger.Debug("opened input", "path", src.Name, "size", "unknown")
	}

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		formatter = output.NewTextFormatter(dcfg, dump.OffsetDigits(src.Size))
	}

	batchSize := output.DefaultBatchSize
	if cfg.Interactive {
		batchSize = 0
	}
	w := output.NewBatchWriter(stdout, formatter, batchSize)

	if cfg.Header {
		if err := w.WriteHeader(); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}

	rows := 0
	for line, err := range f.Lines(src) {
		if err != nil {
			if ferr := w.Flush(); ferr != nil {
				logger.Warn("flush after read error", "err", ferr)
			}
			return &IOError{Op: "read", Err: fmt.Errorf("%s: %w", src.Name, err)}
		}
		if err := w.WriteLine(line); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		rows++
		if ctx.Err() != nil {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	logger.Debug("dump complete", "rows", rows, "output", humanize.Bytes(uint64(w.Written())))
	return ctx.Err()
}
