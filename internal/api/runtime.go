package api

import (
	"github.com/JaimeStill/dpi-lab/internal/config"
	"github.com/JaimeStill/dpi-lab/internal/infrastructure"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	Resolution    resolution.Config
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination:    cfg.API.Pagination,
		Resolution:    cfg.Resolution,
		MaxUploadSize: cfg.Storage.MaxUploadSizeBytes(),
	}
}
