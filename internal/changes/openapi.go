package changes

import (
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/internal/scope"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

type spec struct {
	Options *openapi.Operation
	Apply   *openapi.Operation
	Preview *openapi.Operation
}

var Spec = spec{
	Options: &openapi.Operation{
		Summary:     "Resolution options",
		Description: "Preset entries, initial selection, and available scopes for changing a page's resolution",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
			openapi.PathParam("pageId", "Current page ID"),
			openapi.QueryParam("selected", "string", "Selected page IDs (repeated or comma separated)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolution options", "ResolutionOptions"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Apply: &openapi.Operation{
		Summary:     "Change resolution",
		Description: "Validate the requested DPI, resolve the page scope, and apply the new resolution. Pages are optionally re-rendered.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ResolutionChange", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Changed pages", "ResolutionResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Preview: &openapi.Operation{
		Summary:     "Preview resolution change",
		Description: "Validate and resolve a resolution change without applying it",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ResolutionChange", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolved change", "ResolutionPreview"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Scope": {
			Type: "string",
			Enum: scopeNames(),
		},
		"PresetEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"index":  {Type: "integer"},
				"label":  {Type: "string"},
				"value":  {Type: "string"},
				"custom": {Type: "boolean"},
			},
		},
		"PresetSelection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"index":       {Type: "integer"},
				"editable":    {Type: "boolean"},
				"custom_text": {Type: "string"},
				"select_all":  {Type: "boolean"},
				"state":       {Type: "string", Enum: []any{"preset_selected", "custom_editing"}},
			},
		},
		"ResolutionOptions": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page":      {Type: "string", Format: "uuid"},
				"current":   openapi.SchemaRef("DPI"),
				"entries":   openapi.ArrayOf("PresetEntry"),
				"selection": openapi.SchemaRef("PresetSelection"),
				"scopes":    openapi.ArrayOf("Scope"),
				"min_dpi":   {Type: "integer", Example: resolution.MinDPI},
				"max_dpi":   {Type: "integer", Example: resolution.MaxDPI},
			},
		},
		"ResolutionChange": {
			Type:     "object",
			Required: []string{"current_page", "scope"},
			Properties: map[string]*openapi.Schema{
				"current_page":   {Type: "string", Format: "uuid"},
				"selected_pages": {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
				"scope":          openapi.SchemaRef("Scope"),
				"dpi":            {Type: "string", Description: "Requested DPI, or the custom text when preset selects the custom slot", Example: "300"},
				"preset":         {Type: "integer", Description: "Catalog entry index to select"},
				"render":         {Type: "boolean", Description: "Re-render changed pages"},
			},
		},
		"ResolutionPreview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"scope": openapi.SchemaRef("Scope"),
				"dpi":   openapi.SchemaRef("DPI"),
				"pages": {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
		},
		"ResolutionResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"scope":  openapi.SchemaRef("Scope"),
				"dpi":    openapi.SchemaRef("DPI"),
				"pages":  openapi.ArrayOf("Page"),
				"images": openapi.ArrayOf("Image"),
			},
		},
	}
}

func scopeNames() []any {
	all := scope.All()
	names := make([]any, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}
