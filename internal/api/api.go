// Package api assembles the domain systems into the HTTP module mounted at
// the configured base path, along with its OpenAPI document.
package api

import (
	"net/http"

	"github.com/JaimeStill/dpi-lab/internal/config"
	"github.com/JaimeStill/dpi-lab/internal/infrastructure"
	"github.com/JaimeStill/dpi-lab/pkg/middleware"
	"github.com/JaimeStill/dpi-lab/pkg/module"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

// NewModule builds the API module and serves its OpenAPI document at
// GET /openapi.json under the base path.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)

	mux := http.NewServeMux()
	registerRoutes(mux, cfg.API.BasePath, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
