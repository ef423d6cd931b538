package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrator wraps migrate.Migrate so "no change" runs are not errors.
type migrator struct {
	m *migrate.Migrate
}

func newMigrator(fsys fs.FS, url string) (*migrator, error) {
	src, err := iofs.New(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return &migrator{m: m}, nil
}

func (g *migrator) Up() error {
	return ignoreNoChange(g.m.Up())
}

func (g *migrator) Down() error {
	return ignoreNoChange(g.m.Down())
}

func (g *migrator) Steps(n int) error {
	return ignoreNoChange(g.m.Steps(n))
}

// Version returns 0 when no migration has been applied.
func (g *migrator) Version() (uint, bool, error) {
	v, dirty, err := g.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (g *migrator) Close() {
	g.m.Close()
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
