// Package changes turns a requested resolution and page scope into a
// validated change request and hands it to a resampler.
package changes

import (
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
)

// Request is a fully resolved resolution change.
type Request[T comparable] struct {
	Pages scope.Set[T]
	DPI   resolution.DPI
}

// Build parses raw, resolves s against ctx, and returns the change request.
// Parse failures are returned before the scope is considered.
func Build[T comparable](raw string, s scope.Scope, ctx scope.Context[T]) (*Request[T], error) {
	dpi, err := resolution.Parse(raw)
	if err != nil {
		return nil, err
	}

	pages, err := scope.Resolve(s, ctx)
	if err != nil {
		return nil, err
	}

	return &Request[T]{Pages: pages, DPI: dpi}, nil
}
