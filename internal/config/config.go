// Package config loads the service configuration from TOML files with
// environment variable overrides.
//
// The base file is config.toml. When SERVICE_ENV is set, config.<env>.toml
// is merged over it. Environment variables are applied last.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/database"
	"github.com/JaimeStill/dpi-lab/pkg/logging"
	"github.com/JaimeStill/dpi-lab/pkg/settings"
	"github.com/JaimeStill/dpi-lab/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvServiceEnv = "SERVICE_ENV"
)

// Config is the root service configuration.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	Logging         logging.Config    `toml:"logging"`
	Storage         storage.Config    `toml:"storage"`
	API             APIConfig         `toml:"api"`
	Resolution      resolution.Config `toml:"resolution"`
	Version         string            `toml:"version"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
}

// ShutdownTimeoutDuration bounds the whole graceful shutdown. Valid after Finalize.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return settings.ParseDuration(c.ShutdownTimeout)
}

// Load reads config.toml from the working directory, merges the SERVICE_ENV
// overlay when present, and finalizes the result. A missing base file is
// treated as empty so the service can run from environment variables alone.
func Load() (*Config, error) {
	cfg, err := load(BaseConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

type section struct {
	name     string
	finalize func() error
}

// finalizeAll stops at the first failing section and names it.
func finalizeAll(sections ...section) error {
	for _, s := range sections {
		if err := s.finalize(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// Finalize settles the root fields, then every section in turn.
func (c *Config) Finalize() error {
	settings.Default(&c.ShutdownTimeout, "30s")
	settings.Default(&c.Version, "0.1.0")
	settings.String(EnvServiceVersion, &c.Version)
	if err := settings.Duration(EnvServiceShutdownTimeout, &c.ShutdownTimeout); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	return finalizeAll(
		section{"server", c.Server.Finalize},
		section{"database", func() error { return c.Database.Finalize(databaseEnv) }},
		section{"logging", func() error { return c.Logging.Finalize(loggingEnv) }},
		section{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
		section{"api", c.API.Finalize},
		section{"resolution", func() error { return c.Resolution.Finalize(resolutionEnv) }},
	)
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.ShutdownTimeout, overlay.ShutdownTimeout)
	settings.Merge(&c.Version, overlay.Version)
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Logging.Merge(&overlay.Logging)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Resolution.Merge(&overlay.Resolution)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// overlayPath is the SERVICE_ENV overlay file when it exists.
func overlayPath() string {
	env := os.Getenv(EnvServiceEnv)
	if env == "" {
		return ""
	}
	path := fmt.Sprintf(OverlayConfigPattern, env)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
