package config

import (
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/database"
	"github.com/JaimeStill/dpi-lab/pkg/logging"
	"github.com/JaimeStill/dpi-lab/pkg/middleware"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
	"github.com/JaimeStill/dpi-lab/pkg/pagination"
	"github.com/JaimeStill/dpi-lab/pkg/storage"
)

// Variables read outside a section's Env.
const (
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"
	EnvServiceVersion         = "SERVICE_VERSION"
	EnvAPIBasePath            = "API_BASE_PATH"
)

var serverEnv = &ServerEnv{
	Host:            "SERVER_HOST",
	Port:            "SERVER_PORT",
	ReadTimeout:     "SERVER_READ_TIMEOUT",
	WriteTimeout:    "SERVER_WRITE_TIMEOUT",
	ShutdownTimeout: "SERVER_SHUTDOWN_TIMEOUT",
}

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var storageEnv = &storage.Env{
	BasePath:      "STORAGE_BASE_PATH",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
}

var resolutionEnv = &resolution.Env{
	Presets:      "RESOLUTION_PRESETS",
	DefaultDPI:   "RESOLUTION_DEFAULT_DPI",
	Render:       "RESOLUTION_RENDER",
	MaxRenderDPI: "RESOLUTION_MAX_RENDER_DPI",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}
