// Package pagination provides types and utilities for paginated data queries.
package pagination

import (
	"errors"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// Config bounds the page sizes list endpoints accept.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// ConfigEnv names the variables that override Config.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

var (
	errPageSize = errors.New("page sizes must be positive")
	errPageMax  = errors.New("default_page_size cannot exceed max_page_size")
)

// Finalize fills unset sizes with 20 and 100, applies env and checks
// that the default fits under the maximum.
func (c *Config) Finalize(env *ConfigEnv) error {
	settings.Default(&c.DefaultPageSize, 20)
	settings.Default(&c.MaxPageSize, 100)

	if env != nil {
		if err := errors.Join(
			settings.Int(env.DefaultPageSize, &c.DefaultPageSize),
			settings.Int(env.MaxPageSize, &c.MaxPageSize),
		); err != nil {
			return err
		}
	}

	switch {
	case c.DefaultPageSize < 1, c.MaxPageSize < 1:
		return errPageSize
	case c.DefaultPageSize > c.MaxPageSize:
		return errPageMax
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.DefaultPageSize, overlay.DefaultPageSize)
	settings.Merge(&c.MaxPageSize, overlay.MaxPageSize)
}
