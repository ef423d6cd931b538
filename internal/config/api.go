package config

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/dpi-lab/pkg/middleware"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// APIConfig configures the API module mounted under BasePath.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
	OpenAPI    openapi.Config        `toml:"openapi"`
}

// Finalize checks that BasePath is a single segment such as /api, then
// finalizes the nested sections.
func (c *APIConfig) Finalize() error {
	settings.Default(&c.BasePath, "/api")
	settings.String(EnvAPIBasePath, &c.BasePath)

	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("invalid base_path %q: must be a single segment such as /api", c.BasePath)
	}

	return finalizeAll(
		section{"cors", func() error { return c.CORS.Finalize(corsEnv) }},
		section{"pagination", func() error { return c.Pagination.Finalize(paginationEnv) }},
		section{"openapi", func() error { return c.OpenAPI.Finalize(openAPIEnv) }},
	)
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	settings.Merge(&c.BasePath, overlay.BasePath)
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}
