package pages

import (
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

type spec struct {
	List *openapi.Operation
	Find *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List pages",
		Description: "List the pages of a document in page number order",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Pages", "Page"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find page",
		Description: "Find a page of a document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("documentId", "Document ID"),
			openapi.PathParam("pageId", "Page ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page details", "Page"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"DPI": {
			Type:     "object",
			Required: []string{"horizontal", "vertical"},
			Properties: map[string]*openapi.Schema{
				"horizontal": dpiSchema("Horizontal resolution"),
				"vertical":   dpiSchema("Vertical resolution"),
			},
		},
		"Page": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"document_id": {Type: "string", Format: "uuid"},
				"page_number": {Type: "integer", Description: "1-based position in the document"},
				"dpi":         openapi.SchemaRef("DPI"),
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
	}
}

func dpiSchema(description string) *openapi.Schema {
	return &openapi.Schema{
		Type:        "integer",
		Description: description,
		Minimum:     openapi.Bound(resolution.MinDPI),
		Maximum:     openapi.Bound(resolution.MaxDPI),
	}
}
