package middleware

import (
	"errors"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv maps CORS configuration fields to environment variable names.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

var (
	defaultMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultHeaders = []string{"Content-Type", "Authorization"}
)

// Finalize fills unset fields and applies env. Malformed booleans and
// integers are errors.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = defaultMethods
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = defaultHeaders
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}

	if env == nil {
		return nil
	}

	settings.List(env.Origins, &c.Origins)
	settings.List(env.AllowedMethods, &c.AllowedMethods)
	settings.List(env.AllowedHeaders, &c.AllowedHeaders)
	return errors.Join(
		settings.Bool(env.Enabled, &c.Enabled),
		settings.Bool(env.AllowCredentials, &c.AllowCredentials),
		settings.Int(env.MaxAge, &c.MaxAge),
	)
}

// Merge applies overlay. The two switches always follow the overlay.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	settings.MergeSlice(&c.Origins, overlay.Origins)
	settings.MergeSlice(&c.AllowedMethods, overlay.AllowedMethods)
	settings.MergeSlice(&c.AllowedHeaders, overlay.AllowedHeaders)
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}
