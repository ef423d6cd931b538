// Package logging builds the service logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// Level is a minimum severity in the form accepted by slog.Level text
// decoding: debug, info, warn, or error, optionally offset as "info+2".
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Slog converts l. Call after Finalize has validated it.
func (l Level) Slog() slog.Level {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(l)); err != nil {
		return slog.LevelInfo
	}
	return lv
}

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration settings.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	settings.Default(&c.Level, LevelInfo)
	settings.Default(&c.Format, FormatText)

	if env != nil {
		settings.String(env.Level, (*string)(&c.Level))
		settings.String(env.Format, (*string)(&c.Format))
	}

	c.Level = Level(strings.ToLower(string(c.Level)))
	c.Format = Format(strings.ToLower(string(c.Format)))

	var lv slog.Level
	if err := lv.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.Level, overlay.Level)
	settings.Merge(&c.Format, overlay.Format)
}

// New creates a logger writing to w.
func New(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level.Slog()}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
