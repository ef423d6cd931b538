// Package openapi provides types and utilities for generating OpenAPI 3.1 specifications.
// Route groups contribute their operations and schemas while the server
// registers routes, so the document always matches the mounted handlers.
package openapi

// Spec is the root of an OpenAPI 3.1 document.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations of one path. Only the methods the API
// uses are modelled.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

// Parameter is a path or query parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content"`
}

// Response is either inline or a $ref into components.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is the subset of JSON Schema the API descriptions need.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty"`
	Default     any                `json:"default,omitempty"`
	Example     any                `json:"example,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
}

type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

const jsonMedia = "application/json"

func jsonContent(schema *Schema) map[string]*MediaType {
	return map[string]*MediaType{jsonMedia: {Schema: schema}}
}

// SchemaRef points at components/schemas/name.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef points at components/responses/name.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// ArrayOf is an array of the named component schema.
func ArrayOf(schemaName string) *Schema {
	return &Schema{Type: "array", Items: SchemaRef(schemaName)}
}

// RequestBodyJSON is a JSON body of the named component schema.
func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{Required: required, Content: jsonContent(SchemaRef(schemaName))}
}

// ResponseJSON is a JSON response of the named component schema.
func ResponseJSON(description, schemaName string) *Response {
	return &Response{Description: description, Content: jsonContent(SchemaRef(schemaName))}
}

// ResponseArray is a JSON response holding an array of the named component.
func ResponseArray(description, schemaName string) *Response {
	return &Response{Description: description, Content: jsonContent(ArrayOf(schemaName))}
}

// PathParam is a required uuid path segment.
func PathParam(name, description string) *Parameter {
	return param(name, "path", description, true, &Schema{Type: "string", Format: "uuid"})
}

// QueryParam is a query string parameter of type typ.
func QueryParam(name, typ, description string, required bool) *Parameter {
	return param(name, "query", description, required, &Schema{Type: typ})
}

func param(name, in, description string, required bool, schema *Schema) *Parameter {
	return &Parameter{Name: name, In: in, Required: required, Description: description, Schema: schema}
}

// Bound returns a pointer to v for Schema.Minimum and Schema.Maximum.
func Bound(v float64) *float64 {
	return &v
}
