package openapi

import "github.com/JaimeStill/dpi-lab/pkg/settings"

// Config holds document metadata for the generated API description.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv maps OpenAPI configuration fields to environment variable names.
type ConfigEnv struct {
	Title       string
	Description string
}

const (
	defaultTitle       = "DPI Lab API"
	defaultDescription = "Page resolution service for scanned documents: resolution options, scope resolution, and change requests."
)

// Finalize fills the title and description and applies env.
func (c *Config) Finalize(env *ConfigEnv) error {
	settings.Default(&c.Title, defaultTitle)
	settings.Default(&c.Description, defaultDescription)
	if env != nil {
		settings.String(env.Title, &c.Title)
		settings.String(env.Description, &c.Description)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.Title, overlay.Title)
	settings.Merge(&c.Description, overlay.Description)
}
