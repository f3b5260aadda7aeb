package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the keys accepted in the rxd config file. Pointer fields
// distinguish "absent" from a zero value.
type fileConfig struct {
	Width   *int  `yaml:"width"`
	Group   *int  `yaml:"group"`
	Lines   *int  `yaml:"lines"`
	Control *bool `yaml:"control"`
	Header  *bool `yaml:"header"`
	JSON    *bool `yaml:"json"`
}

// configPath returns the config file location: RXD_CONFIG_PATH, then
// $XDG_CONFIG_HOME/rxd.yaml, then ~/.rxd.yaml.
func configPath() string {
	if path := os.Getenv("RXD_CONFIG_PATH"); path != "" {
		return path
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, "rxd.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rxd.yaml")
}

// loadConfigFile reads default settings from the rxd config file.
// Returns a zero fileConfig if no config file exists.
func loadConfigFile() (fileConfig, string, error) {
	path := configPath()
	if path == "" {
		return fileConfig{}, "", nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileConfig{}, "", nil
	}
	if err != nil {
		return fileConfig{}, path, &UsageError{Err: fmt.Errorf("config file %s: %w", path, err)}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, path, &UsageError{Err: fmt.Errorf("config file %s: %w", path, err)}
	}
	return fc, path, nil
}

// apply copies every setting present in the file onto cfg.
func (fc fileConfig) apply(cfg *Config) {
	if fc.Width != nil {
		cfg.LineWidth = *fc.Width
	}
	if fc.Group != nil {
		cfg.GroupLength = *fc.Group
	}
	if fc.Lines != nil {
		// 0 in the file means no limit.
		cfg.LineLimit = *fc.Lines
		cfg.LineLimitSet = *fc.Lines != 0
	}
	if fc.Control != nil {
		cfg.ShowControlChars = *fc.Control
	}
	if fc.Header != nil {
		cfg.Header = *fc.Header
	}
	if fc.JSON != nil {
		cfg.JSONOutput = *fc.JSON
	}
}
