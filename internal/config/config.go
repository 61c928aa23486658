package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the viewer settings.
type Config struct {
	BufferLimit  int
	MaxLineBytes int
	ShowHints    bool
	LogFile      string
}

const (
	defaultBufferLimit  = 1024
	defaultMaxLineBytes = 1024 * 1024
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BufferLimit:  defaultBufferLimit,
		MaxLineBytes: defaultMaxLineBytes,
		ShowHints:    true,
	}
}

// Load parses the TOML file at path on top of the defaults. An empty path
// returns the defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BufferLimit  *int   `toml:"buffer_limit"`
		MaxLineBytes *int   `toml:"max_line_bytes"`
		ShowHints    *bool  `toml:"show_hints"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.BufferLimit != nil {
		cfg.BufferLimit = *raw.BufferLimit
	}
	if raw.MaxLineBytes != nil {
		cfg.MaxLineBytes = *raw.MaxLineBytes
	}
	if raw.ShowHints != nil {
		cfg.ShowHints = *raw.ShowHints
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		expanded, err := expandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("resolve log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.BufferLimit <= 0 {
		return errors.New("invalid config: buffer_limit must be positive")
	}
	if c.MaxLineBytes <= 0 {
		return errors.New("invalid config: max_line_bytes must be positive")
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
