package cli

import (
	"context"
	"errors"

	"github.com/dl/rxd/internal/dump"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitIO          = 1   // input could not be opened or read, or output failed
	ExitConfig      = 2   // invalid options or config file
	ExitInterrupted = 130 // stopped by SIGINT/SIGTERM
)

// UsageError reports bad command-line usage: unparsable flag values, a
// missing argument, conflicting flags or a malformed config file.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// IOError reports a failure opening or reading the input or writing the dump.
type IOError struct {
	Op  string // "open", "read" or "write"
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	var cerr *dump.ConfigError
	var uerr *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cerr), errors.As(err, &uerr):
		return ExitConfig
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitIO
	}
}
