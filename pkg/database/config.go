package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/JaimeStill/dpi-lab/pkg/settings"
)

// Config describes the PostgreSQL server and the pool kept against it.
// Durations are Go duration strings.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env names the variables that override Config fields.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	return settings.ParseDuration(c.ConnMaxLifetime)
}

func (c *Config) ConnTimeoutDuration() time.Duration {
	return settings.ParseDuration(c.ConnTimeout)
}

func (c *Config) sslMode() string {
	if c.SSLMode == "" {
		return "disable"
	}
	return c.SSLMode
}

// Dsn returns the keyword/value connection string used by the pgx stdlib driver.
func (c *Config) Dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Name, c.User, c.Password, c.sslMode(),
	)
}

// URL returns the pgx5:// form expected by the golang-migrate pgx driver.
func (c *Config) URL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": {c.sslMode()}}.Encode(),
	}
	return u.String()
}

func (c *Config) Finalize(env *Env) error {
	settings.Default(&c.Host, "localhost")
	settings.Default(&c.Port, 5432)
	settings.Default(&c.SSLMode, "disable")
	settings.Default(&c.MaxOpenConns, 25)
	settings.Default(&c.MaxIdleConns, 5)
	settings.Default(&c.ConnMaxLifetime, "15m")
	settings.Default(&c.ConnTimeout, "5s")

	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	settings.Merge(&c.Host, overlay.Host)
	settings.Merge(&c.Port, overlay.Port)
	settings.Merge(&c.Name, overlay.Name)
	settings.Merge(&c.User, overlay.User)
	settings.Merge(&c.Password, overlay.Password)
	settings.Merge(&c.SSLMode, overlay.SSLMode)
	settings.Merge(&c.MaxOpenConns, overlay.MaxOpenConns)
	settings.Merge(&c.MaxIdleConns, overlay.MaxIdleConns)
	settings.Merge(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	settings.Merge(&c.ConnTimeout, overlay.ConnTimeout)
}

func (c *Config) loadEnv(env *Env) error {
	settings.String(env.Host, &c.Host)
	settings.String(env.Name, &c.Name)
	settings.String(env.User, &c.User)
	settings.String(env.Password, &c.Password)
	settings.String(env.SSLMode, &c.SSLMode)

	return errors.Join(
		settings.Int(env.Port, &c.Port),
		settings.Int(env.MaxOpenConns, &c.MaxOpenConns),
		settings.Int(env.MaxIdleConns, &c.MaxIdleConns),
		settings.Duration(env.ConnMaxLifetime, &c.ConnMaxLifetime),
		settings.Duration(env.ConnTimeout, &c.ConnTimeout),
	)
}

func (c *Config) validate() error {
	switch {
	case c.Name == "":
		return errors.New("name required")
	case c.User == "":
		return errors.New("user required")
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.MaxIdleConns > c.MaxOpenConns:
		return fmt.Errorf("max_idle_conns %d exceeds max_open_conns %d", c.MaxIdleConns, c.MaxOpenConns)
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}
