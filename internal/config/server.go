package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// ServerConfig configures the HTTP listener. Timeouts are Go duration strings.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// ServerEnv names the variables that override ServerConfig.
type ServerEnv struct {
	Host            string
	Port            string
	ReadTimeout     string
	WriteTimeout    string
	ShutdownTimeout string
}

// Addr returns host:port for net.Listen.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return settings.ParseDuration(c.ReadTimeout)
}

// WriteTimeoutDuration bounds a whole response, renders included.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return settings.ParseDuration(c.WriteTimeout)
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return settings.ParseDuration(c.ShutdownTimeout)
}

// Finalize fills unset fields, applies the SERVER_* variables and
// validates the result.
func (c *ServerConfig) Finalize() error {
	settings.Default(&c.Host, "0.0.0.0")
	settings.Default(&c.Port, 8080)
	settings.Default(&c.ReadTimeout, "1m")
	settings.Default(&c.WriteTimeout, "15m")
	settings.Default(&c.ShutdownTimeout, "30s")

	settings.String(serverEnv.Host, &c.Host)
	if err := errors.Join(
		settings.Int(serverEnv.Port, &c.Port),
		settings.Duration(serverEnv.ReadTimeout, &c.ReadTimeout),
		settings.Duration(serverEnv.WriteTimeout, &c.WriteTimeout),
		settings.Duration(serverEnv.ShutdownTimeout, &c.ShutdownTimeout),
	); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for name, v := range map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// Merge applies non-zero values from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	settings.Merge(&c.Host, overlay.Host)
	settings.Merge(&c.Port, overlay.Port)
	settings.Merge(&c.ReadTimeout, overlay.ReadTimeout)
	settings.Merge(&c.WriteTimeout, overlay.WriteTimeout)
	settings.Merge(&c.ShutdownTimeout, overlay.ShutdownTimeout)
}
