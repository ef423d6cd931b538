package resolution

import (
	"errors"
	"fmt"
	"slices"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// Config holds resolution settings for the service.
type Config struct {
	// Presets are offered before the custom slot. Default: 300, 400, 600.
	Presets []int `toml:"presets"`
	// DefaultDPI is assigned to pages of newly uploaded documents.
	DefaultDPI int `toml:"default_dpi"`
	// Render re-renders changed pages when a request does not say otherwise.
	Render *bool `toml:"render"`
	// MaxRenderDPI caps the density pages are rendered at.
	MaxRenderDPI int `toml:"max_render_dpi"`
}

// Env maps resolution configuration fields to environment variable names.
type Env struct {
	Presets      string
	DefaultDPI   string
	Render       string
	MaxRenderDPI string
}

// RenderOnChange reports whether changed pages are re-rendered by default.
func (c *Config) RenderOnChange() bool {
	return c.Render != nil && *c.Render
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	settings.MergeSlice(&c.Presets, overlay.Presets)
	settings.Merge(&c.DefaultDPI, overlay.DefaultDPI)
	settings.MergePtr(&c.Render, overlay.Render)
	settings.Merge(&c.MaxRenderDPI, overlay.MaxRenderDPI)
}

func (c *Config) loadDefaults() {
	if len(c.Presets) == 0 {
		c.Presets = slices.Clone(DefaultPresets)
	}
	settings.Default(&c.DefaultDPI, 300)
	if c.Render == nil {
		render := false
		c.Render = &render
	}
	settings.Default(&c.MaxRenderDPI, 1200)
}

// loadEnv reports every malformed variable, not only the first.
func (c *Config) loadEnv(env *Env) error {
	return errors.Join(
		settings.Ints(env.Presets, &c.Presets),
		settings.Int(env.DefaultDPI, &c.DefaultDPI),
		settings.Flag(env.Render, &c.Render),
		settings.Int(env.MaxRenderDPI, &c.MaxRenderDPI),
	)
}

func (c *Config) validate() error {
	seen := make(map[int]bool, len(c.Presets))
	for _, p := range c.Presets {
		if err := checkBounds(p); err != nil {
			return fmt.Errorf("invalid preset: %w", err)
		}
		if seen[p] {
			return fmt.Errorf("duplicate preset: %d", p)
		}
		seen[p] = true
	}
	if err := checkBounds(c.DefaultDPI); err != nil {
		return fmt.Errorf("invalid default_dpi: %w", err)
	}
	if err := checkBounds(c.MaxRenderDPI); err != nil {
		return fmt.Errorf("invalid max_render_dpi: %w", err)
	}
	return nil
}
