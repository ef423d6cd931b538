package openapi

import (
	"encoding/json"
	"net/http"
)

// NewSpec creates an empty OpenAPI 3.1 document with default components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    "3.1.0",
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// SetDescription sets the API description.
func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddServer appends a server URL.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under the given HTTP method.
// Unsupported methods are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item := s.Paths[path]
	if item == nil {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// NewComponents returns components holding the Error schema and the
// error responses operations refer to by name.
func NewComponents() *Components {
	errorBody := func(description string) *Response {
		return ResponseJSON(description, "Error")
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:       "object",
				Required:   []string{"error"},
				Properties: map[string]*Schema{"error": {Type: "string"}},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": errorBody("Invalid request"),
			"NotFound":   errorBody("Resource not found"),
			"Conflict":   errorBody("Resource conflict"),
		},
	}
}

// AddSchemas merges schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// MarshalJSON renders the spec as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that serves pre-rendered spec bytes.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
