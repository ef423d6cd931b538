// Package routes groups HTTP handlers with their OpenAPI operations and
// registers both on a ServeMux and an OpenAPI document in one pass.
package routes

import (
	"net/http"

	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

// Route is a single HTTP handler with an optional OpenAPI operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group is a set of routes sharing a prefix. Routes without explicit
// tags inherit the group's tags in the generated document.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's operations and schemas to spec, with paths
// rooted at basePath.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g *Group) addToSpec(parent string, spec *openapi.Spec) {
	prefix := parent + g.Prefix

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for i := range g.Children {
		g.Children[i].addToSpec(prefix, spec)
	}
}

// Register mounts every group on mux and documents it in spec.
// Handlers are mounted relative to the module that owns mux, so basePath
// only affects the documented paths.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		register(mux, "", group)
		group.AddToSpec(basePath, spec)
	}
}

func register(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}
