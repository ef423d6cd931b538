// Package infrastructure builds the systems the domain packages share:
// the lifecycle coordinator, the logger, the database pool and blob storage.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/dpi-lab/internal/config"
	"github.com/JaimeStill/dpi-lab/pkg/database"
	"github.com/JaimeStill/dpi-lab/pkg/lifecycle"
	"github.com/JaimeStill/dpi-lab/pkg/logging"
	"github.com/JaimeStill/dpi-lab/pkg/storage"
)

type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New builds every system without connecting or touching disk; that
// happens in the startup hooks Start registers.
func New(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging, os.Stdout),
	}

	var err error
	if infra.Database, err = database.New(&cfg.Database, infra.Logger); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if infra.Storage, err = storage.New(&cfg.Storage, infra.Logger); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return infra, nil
}

// Start registers the database, then storage, with the lifecycle.
func (i *Infrastructure) Start() error {
	systems := []struct {
		name  string
		start func(*lifecycle.Coordinator) error
	}{
		{"database", i.Database.Start},
		{"storage", i.Storage.Start},
	}

	for _, sys := range systems {
		if err := sys.start(i.Lifecycle); err != nil {
			return fmt.Errorf("start %s: %w", sys.name, err)
		}
	}
	return nil
}
