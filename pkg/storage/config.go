package storage

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
	"github.com/docker/go-units"
)

// Config locates blob storage and bounds uploads. MaxUploadSize is a
// human readable size such as "100MB", decoded with go-units.
type Config struct {
	BasePath      string `toml:"base_path"`
	MaxUploadSize string `toml:"max_upload_size"`

	maxUploadBytes int64
}

// Env names the variables that override Config fields.
type Env struct {
	BasePath      string
	MaxUploadSize string
}

// MaxUploadSizeBytes returns the decoded upload limit. Valid after Finalize.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadBytes
}

func (c *Config) Finalize(env *Env) error {
	settings.Default(&c.BasePath, ".data/blobs")
	settings.Default(&c.MaxUploadSize, "100MB")

	if env != nil {
		settings.String(env.BasePath, &c.BasePath)
		settings.String(env.MaxUploadSize, &c.MaxUploadSize)
	}

	if c.BasePath == "" {
		return errors.New("base_path required")
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive, got %s", c.MaxUploadSize)
	}
	c.maxUploadBytes = size
	return nil
}

// Merge applies non-zero values from overlay. The size is decoded in Finalize.
func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.BasePath, overlay.BasePath)
	settings.Merge(&c.MaxUploadSize, overlay.MaxUploadSize)
}
