package cli

import (
	"errors"
	"fmt"

	"github.com/dl/rxd/internal/dump"
)

// Config holds all configuration for a single rxd run.
type Config struct {
	Path             string
	LineWidth        int
	GroupLength      int
	LineLimit        int
	LineLimitSet     bool
	ShowControlChars bool
	Header           bool
	JSONOutput       bool
	// Interactive flushes every row as soon as it is formatted.
	Interactive bool
}

// DefaultConfig returns the configuration used when no flags or config file
// override it.
func DefaultConfig() Config {
	d := dump.DefaultConfig()
	return Config{
		LineWidth:   d.LineWidth,
		GroupLength: d.GroupLength,
	}
}

// Validate checks that the config is valid and returns an error if not.
// Layout problems are reported as *dump.ConfigError.
func (c *Config) Validate() error {
	if c.Path == "" {
		return &UsageError{Err: errors.New("no input file specified")}
	}
	if c.LineLimitSet && c.LineLimit <= 0 {
		return &dump.ConfigError{Field: "line count", Value: c.LineLimit}
	}
	if c.Header && c.JSONOutput {
		return &UsageError{Err: fmt.Errorf("cannot use --header and --json together")}
	}
	return c.DumpConfig().Validate()
}

// DumpConfig returns the formatter settings for this run.
func (c *Config) DumpConfig() dump.Config {
	cfg := dump.Config{
		LineWidth:        c.LineWidth,
		GroupLength:      c.GroupLength,
		ShowControlChars: c.ShowControlChars,
	}
	if c.LineLimitSet {
		cfg.LineLimit = c.LineLimit
	}
	return cfg
}
