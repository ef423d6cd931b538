// Package module mounts independently built HTTP handlers under
// single-segment path prefixes such as "/api".
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/dpi-lab/pkg/middleware"
)

// Module is an HTTP handler mounted at a prefix with its own middleware.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a Module. It panics when prefix is not a single path
// segment with a leading slash.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	req.URL.RawPath = ""

	m.Handler().ServeHTTP(w, req)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix must be a single segment: %q", prefix)
	}
	return nil
}
