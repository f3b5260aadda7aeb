package dump

import "fmt"

// MaxLineWidth bounds the bytes per row so row buffers stay allocatable.
const MaxLineWidth = 1 << 20

// Config holds the layout settings for a dump. It is read-only once a
// Formatter has been built from it.
type Config struct {
	LineWidth        int  // bytes per row
	GroupLength      int  // bytes per group within a row
	LineLimit        int  // maximum rows; 0 means no limit
	ShowControlChars bool // render C0 codes as control pictures instead of '.'
}

// DefaultConfig returns the classic 16-bytes-per-row layout.
func DefaultConfig() Config {
	return Config{
		LineWidth:   16,
		GroupLength: 1,
	}
}

// ConfigError reports a setting that leaves row or group boundaries undefined.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

// Validate checks that the config is usable and returns a *ConfigError if not.
func (c Config) Validate() error {
	if c.LineWidth <= 0 || c.LineWidth > MaxLineWidth {
		return &ConfigError{Field: "line width", Value: c.LineWidth}
	}
	if c.GroupLength <= 0 {
		return &ConfigError{Field: "group length", Value: c.GroupLength}
	}
	if c.LineLimit < 0 {
		return &ConfigError{Field: "line count", Value: c.LineLimit}
	}
	return nil
}

// groups returns how many groups a full row is split into.
func (c Config) groups() int {
	return 1 + (c.LineWidth-1)/c.GroupLength
}

// HexWidth returns the rendered width of the hex column for every row.
func (c Config) HexWidth() int {
	return 2*c.LineWidth + c.groups() - 1
}
